package actions

import (
	"context"
	"fmt"

	gberrors "github.com/eyalev/gitbox/internal/errors"
	"github.com/eyalev/gitbox/internal/runtime"
)

// AddRepoAction creates a named repository under the storage root: directory,
// git working copy, empty metadata record, private GitHub mirror, initial
// commit and push.
func AddRepoAction(ctx context.Context, rt *runtime.Context, name string) error {
	dir, err := rt.Registry.Create(ctx, name)
	if err != nil {
		return err
	}

	ghClient, err := rt.GitHub(ctx)
	if err != nil {
		return err
	}
	if !ghClient.CheckAuthenticated(ctx) {
		return fmt.Errorf("%w: run 'gh auth login' or set GITHUB_TOKEN", gberrors.ErrNotAuthenticated)
	}

	owner, err := ghClient.AuthenticatedUser(ctx)
	if err != nil {
		return err
	}
	exists, err := ghClient.RepoExists(ctx, owner, name)
	if err != nil {
		return err
	}
	if exists {
		rt.Splog.Info("GitHub repository '%s/%s' already exists, reusing it", owner, name)
	}

	cloneURL, _, err := ghClient.CreatePrivateRepo(ctx, name)
	if err != nil {
		return err
	}

	if err := rt.Git.AddRemote(ctx, dir, "origin", cloneURL); err != nil {
		return err
	}

	if err := rt.Git.StageAll(ctx, dir); err != nil {
		return err
	}
	if err := rt.Git.Commit(ctx, dir, "Initial commit"); err != nil {
		return err
	}

	// The remote may already have history (pre-existing mirror); try to merge
	// it before pushing.
	if err := rt.Git.Pull(ctx, dir, rt.Config.DefaultBranch); err != nil {
		rt.Splog.Debug("pull from new remote failed (likely empty): %v", err)
	}

	return rt.Git.Push(ctx, dir, rt.Config.DefaultBranch)
}
