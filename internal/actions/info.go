package actions

import (
	"context"

	"github.com/eyalev/gitbox/internal/git"
	"github.com/eyalev/gitbox/internal/metadata"
	"github.com/eyalev/gitbox/internal/runtime"
)

// RepoInfo describes one repository for display
type RepoInfo struct {
	Name      string
	Path      string
	RemoteURL string
	Branch    string
	LatestID  string
	Latest    string
	Entries   []metadata.Entry
}

// RepoInfoAction collects display information for a repository.
// The repository name may be partial.
func RepoInfoAction(ctx context.Context, rt *runtime.Context, name string) (*RepoInfo, error) {
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

	info := &RepoInfo{
		Name:    actual,
		Path:    repoDir,
		Entries: record.Entries,
	}

	if url, err := rt.Git.RemoteURL(ctx, repoDir, "origin"); err == nil {
		info.RemoteURL = url
	}

	if head, err := git.Head(repoDir); err == nil {
		info.Branch = head.Branch
		info.LatestID = head.ShortID
		info.Latest = head.Subject
	}

	return info, nil
}
