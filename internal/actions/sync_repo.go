package actions

import (
	"context"
	"fmt"

	"github.com/eyalev/gitbox/internal/runtime"
)

// SyncRepoAction brings one repository in line with its remote: pull, commit
// any local changes, push. The repository name may be partial.
func SyncRepoAction(ctx context.Context, rt *runtime.Context, name string) error {
	actual, err := rt.Registry.Find(name)
	if err != nil {
		return err
	}
	if actual != name {
		rt.Splog.Info("Found repository '%s' matching '%s'", actual, name)
	}

	repoDir, err := rt.Registry.Resolve(actual)
	if err != nil {
		return err
	}

	remoteURL, err := rt.Git.RemoteURL(ctx, repoDir, "origin")
	if err != nil {
		return err
	}
	if remoteURL == "" {
		return fmt.Errorf("repository '%s' has no remote origin configured; run 'gitbox add-repo %s' first", actual, actual)
	}

	if err := rt.Git.Pull(ctx, repoDir, rt.Config.DefaultBranch); err != nil {
		rt.Splog.Warn("pull failed: %v", err)
	}

	hasChanges, err := rt.Git.HasChanges(ctx, repoDir)
	if err != nil {
		return err
	}
	if hasChanges {
		if err := rt.Git.StageAll(ctx, repoDir); err != nil {
			return err
		}
		if err := rt.Git.Commit(ctx, repoDir, "Update synced files"); err != nil {
			return err
		}
		rt.Splog.Info("Committed local changes")
	} else {
		rt.Splog.Info("No local changes to commit")
	}

	return rt.Git.Push(ctx, repoDir, rt.Config.DefaultBranch)
}

// SyncPushOptions contains options for the sync-push command
type SyncPushOptions struct {
	Repo string

	// File limits the commit message to a single file; all changes are still
	// staged because links and metadata move together
	File string
}

// SyncPushAction commits and pushes local changes of one repository without
// pulling first.
func SyncPushAction(ctx context.Context, rt *runtime.Context, opts SyncPushOptions) error {
	repoDir, err := rt.Registry.Resolve(opts.Repo)
	if err != nil {
		return err
	}

	hasChanges, err := rt.Git.HasChanges(ctx, repoDir)
	if err != nil {
		return err
	}
	if hasChanges {
		if err := rt.Git.StageAll(ctx, repoDir); err != nil {
			return err
		}
		message := "Update synced files"
		if opts.File != "" {
			message = fmt.Sprintf("Update %s", opts.File)
		}
		if err := rt.Git.Commit(ctx, repoDir, message); err != nil {
			return err
		}
	}

	return rt.Git.Push(ctx, repoDir, rt.Config.DefaultBranch)
}
