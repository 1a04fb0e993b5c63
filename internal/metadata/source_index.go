package metadata

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// Association records that a source path is tracked by a repository
type Association struct {
	Source      string `yaml:"source"`
	Repo        string `yaml:"repo"`
	Name        string `yaml:"name"`
	IsDirectory bool   `yaml:"dir,omitempty"`
}

// SourceIndex is the source-side view of tracking: which repositories track
// which external paths. One index per machine, kept under the gitbox state
// directory rather than next to the user's files.
type SourceIndex struct {
	Associations []Association `yaml:"associations"`
}

// LoadSourceIndex reads the index at the given path.
// A missing file yields an empty index; a malformed file is an error.
func LoadSourceIndex(path string) (*SourceIndex, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &SourceIndex{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read source index: %w", err)
	}

	var index SourceIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, &gberrors.MetadataCorruptError{Path: path, Err: err}
	}
	return &index, nil
}

// Save writes the index atomically
func (i *SourceIndex) Save(path string) error {
	sort.Slice(i.Associations, func(a, b int) bool {
		if i.Associations[a].Source != i.Associations[b].Source {
			return i.Associations[a].Source < i.Associations[b].Source
		}
		return i.Associations[a].Repo < i.Associations[b].Repo
	})
	return writeAtomic(path, i)
}

// ReposFor returns the repositories tracking the given source path
func (i *SourceIndex) ReposFor(source string) []string {
	var repos []string
	for _, a := range i.Associations {
		if a.Source == source {
			repos = append(repos, a.Repo)
		}
	}
	return repos
}

// IsTracked reports whether the source path is already tracked by the repository
func (i *SourceIndex) IsTracked(source, repo string) bool {
	for _, a := range i.Associations {
		if a.Source == source && a.Repo == repo {
			return true
		}
	}
	return false
}

// Add records an association. Re-adding an existing association is a no-op.
// Returns true if the index was modified.
func (i *SourceIndex) Add(assoc Association) bool {
	if i.IsTracked(assoc.Source, assoc.Repo) {
		return false
	}
	i.Associations = append(i.Associations, assoc)
	return true
}

// RemoveRepo drops every association belonging to a repository.
// Returns the number of associations removed.
func (i *SourceIndex) RemoveRepo(repo string) int {
	kept := i.Associations[:0]
	removed := 0
	for _, a := range i.Associations {
		if a.Repo == repo {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	i.Associations = kept
	return removed
}
