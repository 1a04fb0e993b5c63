package actions

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gberrors "github.com/eyalev/gitbox/internal/errors"
	"github.com/eyalev/gitbox/internal/link"
	"github.com/eyalev/gitbox/internal/metadata"
	"github.com/eyalev/gitbox/internal/runtime"
)

// SyncOptions contains options for the sync command
type SyncOptions struct {
	// Path is the file or directory to register
	Path string

	// Repo is the target repository name
	Repo string

	// CreateRepo creates the repository if it does not exist yet
	CreateRepo bool
}

// SyncAction registers a source path under a repository: a symlink is placed
// inside the repository tree, the repository record and the source index are
// both updated, and the result is committed and pushed.
//
// Re-running sync for the same path and repository is a no-op on disk and
// proceeds straight to the commit/push step, so an interrupted sync can be
// resumed by running it again.
func SyncAction(ctx context.Context, rt *runtime.Context, opts SyncOptions) error {
	source, err := resolveSource(opts.Path)
	if err != nil {
		return err
	}

	repoDir, err := rt.Registry.Resolve(opts.Repo)
	if err != nil {
		if !opts.CreateRepo || !errors.Is(err, gberrors.ErrRepositoryNotFound) {
			return err
		}
		rt.Splog.Info("Repository '%s' doesn't exist. Creating it...", opts.Repo)
		if err := AddRepoAction(ctx, rt, opts.Repo); err != nil {
			return err
		}
		if repoDir, err = rt.Registry.Resolve(opts.Repo); err != nil {
			return err
		}
	}

	record, err := metadata.LoadRecord(repoDir)
	if err != nil {
		return err
	}

	index, err := metadata.LoadSourceIndex(rt.Config.SourceIndexPath())
	if err != nil {
		return err
	}

	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("%w: %s", gberrors.ErrSourceNotFound, source)
	}

	entry := metadata.Entry{
		Name:        filepath.Base(source),
		Source:      source,
		IsDirectory: info.IsDir(),
	}

	// Relative-name collisions with a different source are rejected outright;
	// a disambiguation scheme would make link paths depend on sync order.
	recordChanged, err := record.AddEntry(entry)
	if err != nil {
		return err
	}

	dest := filepath.Join(repoDir, "files", entry.Name)
	if err := link.Create(source, dest); err != nil {
		return err
	}

	if recordChanged {
		if err := record.Save(repoDir); err != nil {
			return err
		}
	}

	if index.Add(metadata.Association{
		Source:      source,
		Repo:        opts.Repo,
		Name:        entry.Name,
		IsDirectory: entry.IsDirectory,
	}) {
		if err := index.Save(rt.Config.SourceIndexPath()); err != nil {
			return err
		}
	}

	hasChanges, err := rt.Git.HasChanges(ctx, repoDir)
	if err != nil {
		return err
	}
	if hasChanges {
		if err := rt.Git.StageAll(ctx, repoDir); err != nil {
			return err
		}
		if err := rt.Git.Commit(ctx, repoDir, fmt.Sprintf("Add %s", entry.Name)); err != nil {
			return err
		}
	}

	return rt.Git.Push(ctx, repoDir, rt.Config.DefaultBranch)
}

// resolveSource validates the source path and returns it in absolute,
// symlink-resolved form so records always hold canonical paths.
func resolveSource(path string) (string, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", gberrors.ErrSourceNotFound, path)
		}
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return resolved, nil
}
