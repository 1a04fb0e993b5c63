package actions

import (
	"context"
	"fmt"
	"os"

	"github.com/eyalev/gitbox/internal/metadata"
	"github.com/eyalev/gitbox/internal/runtime"
)

// DeleteDescription lists what deleting a repository would remove, for the
// confirmation prompt.
type DeleteDescription struct {
	Name      string
	Path      string
	RemoteURL string
	Entries   []metadata.Entry
}

// DescribeDeleteAction resolves a (possibly partial) repository name and
// reports what deletion would affect. Nothing is modified.
func DescribeDeleteAction(ctx context.Context, rt *runtime.Context, name string) (*DeleteDescription, error) {
	actual, err := rt.Registry.Find(name)
	if err != nil {
		return nil, err
	}

	repoDir, err := rt.Registry.Resolve(actual)
	if err != nil {
		return nil, err
	}

	record, err := metadata.LoadRecord(repoDir)
	if err != nil {
		return nil, err
	}

	desc := &DeleteDescription{
		Name:    actual,
		Path:    repoDir,
		Entries: record.Entries,
	}
	if url, err := rt.Git.RemoteURL(ctx, repoDir, "origin"); err == nil {
		desc.RemoteURL = url
	}
	return desc, nil
}

// DeleteRepoAction removes a repository from local storage. The remote mirror
// is left untouched. Source-index associations for the repository are dropped
// so a later sync of the same paths starts clean.
func DeleteRepoAction(rt *runtime.Context, desc *DeleteDescription) error {
	if err := os.RemoveAll(desc.Path); err != nil {
		return fmt.Errorf("failed to delete repository directory %s: %w", desc.Path, err)
	}

	index, err := metadata.LoadSourceIndex(rt.Config.SourceIndexPath())
	if err != nil {
		// Repository is gone; a corrupt index should not resurrect it
		rt.Splog.Warn("failed to load source index: %v", err)
		return nil
	}
	if index.RemoveRepo(desc.Name) > 0 {
		if err := index.Save(rt.Config.SourceIndexPath()); err != nil {
			return err
		}
	}

	return nil
}
