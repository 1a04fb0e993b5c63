package actions

import (
	"path/filepath"

	"github.com/eyalev/gitbox/internal/link"
	"github.com/eyalev/gitbox/internal/metadata"
	"github.com/eyalev/gitbox/internal/runtime"
)

// EntryStatus pairs a tracked entry with the validity of its on-disk link
type EntryStatus struct {
	metadata.Entry
	LinkOK bool
}

// TrackedFile is one tracked entry together with its owning repository
type TrackedFile struct {
	metadata.Entry
	Repo string
}

// ListReposAction returns the names of all repositories
func ListReposAction(rt *runtime.Context) ([]string, error) {
	return rt.Registry.List()
}

// RepoEntriesAction returns the entries of one repository with a link sanity
// check per entry. Broken links are reported, never repaired. The repository
// name may be partial.
func RepoEntriesAction(rt *runtime.Context, name string) (string, []EntryStatus, error) {
	actual, err := rt.Registry.Find(name)
	if err != nil {
		return "", nil, err
	}

	repoDir, err := rt.Registry.Resolve(actual)
	if err != nil {
		return "", nil, err
	}

	record, err := metadata.LoadRecord(repoDir)
	if err != nil {
		return "", nil, err
	}

	statuses := make([]EntryStatus, 0, len(record.Entries))
	for _, entry := range record.Entries {
		linkPath := filepath.Join(repoDir, "files", entry.Name)
		statuses = append(statuses, EntryStatus{
			Entry:  entry,
			LinkOK: link.Verify(linkPath, entry.Source),
		})
	}

	return actual, statuses, nil
}

// ListFilesAction returns every tracked entry across all repositories
func ListFilesAction(rt *runtime.Context) ([]TrackedFile, error) {
	names, err := rt.Registry.List()
	if err != nil {
		return nil, err
	}

	var files []TrackedFile
	for _, name := range names {
		repoDir, err := rt.Registry.Resolve(name)
		if err != nil {
			continue
		}
		record, err := metadata.LoadRecord(repoDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range record.Entries {
			files = append(files, TrackedFile{Entry: entry, Repo: name})
		}
	}

	return files, nil
}
