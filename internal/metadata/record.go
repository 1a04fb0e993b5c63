package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// RecordFileName is the per-repository metadata file. Its presence is what
// marks a directory under the storage root as a gitbox repository.
const RecordFileName = ".gitbox.yaml"

// Entry describes one tracked source inside a repository
type Entry struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	IsDirectory bool   `yaml:"dir,omitempty"`
}

// Record is the set of entries tracked by one repository
type Record struct {
	Repo    string  `yaml:"repo,omitempty"`
	Entries []Entry `yaml:"entries"`
}

// RecordPath returns the metadata file location for a repository directory
func RecordPath(repoDir string) string {
	return filepath.Join(repoDir, RecordFileName)
}

// NewRecord creates an empty record for a repository
func NewRecord(repoName string) *Record {
	return &Record{Repo: repoName}
}

// LoadRecord reads the record at the given repository directory.
// A missing file yields an empty record; a malformed file is an error.
func LoadRecord(repoDir string) (*Record, error) {
	path := RecordPath(repoDir)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata record: %w", err)
	}

	var record Record
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, &gberrors.MetadataCorruptError{Path: path, Err: err}
	}
	return &record, nil
}

// Save writes the record back to its repository directory atomically
func (r *Record) Save(repoDir string) error {
	r.sort()
	return writeAtomic(RecordPath(repoDir), r)
}

// Get returns the entry with the given relative name, if any
func (r *Record) Get(name string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// BySource returns the entry tracking the given source path, if any
func (r *Record) BySource(source string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Source == source {
			return e, true
		}
	}
	return Entry{}, false
}

// AddEntry appends an entry to the record. An exact repeat of an existing
// mapping is a no-op (idempotent re-sync); a relative name already bound to a
// different source is rejected with ErrDuplicateEntry and leaves the record
// unchanged. Returns true if the record was modified.
func (r *Record) AddEntry(entry Entry) (bool, error) {
	if existing, ok := r.Get(entry.Name); ok {
		if existing.Source == entry.Source {
			return false, nil
		}
		return false, &gberrors.DuplicateEntryError{
			Name:           entry.Name,
			ExistingSource: existing.Source,
			NewSource:      entry.Source,
		}
	}
	r.Entries = append(r.Entries, entry)
	return true, nil
}

func (r *Record) sort() {
	sort.Slice(r.Entries, func(i, j int) bool {
		return r.Entries[i].Name < r.Entries[j].Name
	})
}

// writeAtomic serializes v as YAML to path via a temp file and rename
func writeAtomic(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp metadata file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close metadata file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set metadata permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace metadata file: %w", err)
	}
	return nil
}
