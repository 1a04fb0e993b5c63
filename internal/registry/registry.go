// Package registry enumerates and resolves the repositories under the storage
// root. There is no index file: the filesystem is the single source of truth,
// and every call re-reads it so external changes are always visible. A
// directory only counts as a repository if it carries the metadata record.
package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gberrors "github.com/eyalev/gitbox/internal/errors"
	"github.com/eyalev/gitbox/internal/metadata"
)

// VCSInitializer initializes a version-control working copy in a directory
type VCSInitializer interface {
	Init(ctx context.Context, dir, branch string) error
}

// Registry resolves repository names to their on-disk locations
type Registry struct {
	reposDir      string
	defaultBranch string
	vcs           VCSInitializer
}

// New creates a Registry over the given storage root
func New(reposDir, defaultBranch string, vcs VCSInitializer) *Registry {
	return &Registry{reposDir: reposDir, defaultBranch: defaultBranch, vcs: vcs}
}

// ReposDir returns the storage root
func (r *Registry) ReposDir() string {
	return r.reposDir
}

// List returns the names of all repositories under the storage root, sorted.
// Directories without the metadata record are ignored.
func (r *Registry) List() ([]string, error) {
	entries, err := os.ReadDir(r.reposDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read storage root %s: %w", r.reposDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		marker := metadata.RecordPath(filepath.Join(r.reposDir, entry.Name()))
		if _, err := os.Stat(marker); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// Resolve returns the on-disk location of a repository by exact name
func (r *Registry) Resolve(name string) (string, error) {
	dir := filepath.Join(r.reposDir, name)
	if _, err := os.Stat(metadata.RecordPath(dir)); err != nil {
		available, _ := r.List()
		return "", gberrors.NewRepositoryNotFoundError(name, available)
	}
	return dir, nil
}

// Find resolves a possibly partial repository name. An exact match wins;
// otherwise a unique substring match (in either direction) is accepted.
func (r *Registry) Find(partial string) (string, error) {
	names, err := r.List()
	if err != nil {
		return "", err
	}

	for _, name := range names {
		if name == partial {
			return name, nil
		}
	}

	var matches []string
	for _, name := range names {
		if strings.Contains(name, partial) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		for _, name := range names {
			if strings.Contains(partial, name) {
				matches = append(matches, name)
			}
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", gberrors.NewRepositoryNotFoundError(partial, names)
	default:
		return "", &gberrors.AmbiguousRepositoryError{Name: partial, Matches: matches}
	}
}

// Create allocates the directory for a new repository, initializes its
// version-control working copy and writes an empty metadata record.
// Returns the repository location.
func (r *Registry) Create(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	dir := filepath.Join(r.reposDir, name)
	if _, err := os.Stat(dir); err == nil {
		return "", &gberrors.RepositoryExistsError{Name: name}
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create repository directory %s: %w", dir, err)
	}

	if err := r.vcs.Init(ctx, dir, r.defaultBranch); err != nil {
		return "", err
	}

	record := metadata.NewRecord(name)
	if err := record.Save(dir); err != nil {
		return "", err
	}

	return dir, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("repository name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("repository name cannot contain path separators")
	}
	return nil
}
