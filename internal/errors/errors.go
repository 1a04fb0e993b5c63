// Package errors provides sentinel errors and custom error types for the gitbox application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryNotFound indicates that a repository does not exist under the storage root
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrRepositoryExists indicates that a repository with the same name already exists
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrMetadataCorrupt indicates that a metadata record could not be parsed
	ErrMetadataCorrupt = errors.New("metadata corrupt")

	// ErrDuplicateEntry indicates that a relative name is already bound to a different source
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrSourceNotFound indicates that the path to sync does not exist
	ErrSourceNotFound = errors.New("source not found")

	// ErrDestinationExists indicates that a non-link file occupies the link destination
	ErrDestinationExists = errors.New("destination exists")

	// ErrLinkConflict indicates that an existing link points at a different source
	ErrLinkConflict = errors.New("link conflict")

	// ErrNotAuthenticated indicates that no GitHub credentials are available
	ErrNotAuthenticated = errors.New("not authenticated with GitHub")
)

// RepositoryNotFoundError reports a missing repository, with the names that were available
type RepositoryNotFoundError struct {
	Name      string
	Available []string
}

func (e *RepositoryNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("repository '%s' does not exist", e.Name)
	}
	return fmt.Sprintf("repository '%s' does not exist. Available repositories: %s", e.Name, strings.Join(e.Available, ", "))
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// NewRepositoryNotFoundError creates a new RepositoryNotFoundError
func NewRepositoryNotFoundError(name string, available []string) *RepositoryNotFoundError {
	return &RepositoryNotFoundError{Name: name, Available: available}
}

// AmbiguousRepositoryError reports a partial name matching more than one repository
type AmbiguousRepositoryError struct {
	Name    string
	Matches []string
}

func (e *AmbiguousRepositoryError) Error() string {
	return fmt.Sprintf("multiple repositories match '%s': %s. Please be more specific", e.Name, strings.Join(e.Matches, ", "))
}

// Is returns true if the target error is ErrRepositoryNotFound
func (e *AmbiguousRepositoryError) Is(target error) bool {
	return target == ErrRepositoryNotFound
}

// RepositoryExistsError reports a name collision under the storage root
type RepositoryExistsError struct {
	Name string
}

func (e *RepositoryExistsError) Error() string {
	return fmt.Sprintf("repository '%s' already exists", e.Name)
}

// Is returns true if the target error is ErrRepositoryExists
func (e *RepositoryExistsError) Is(target error) bool {
	return target == ErrRepositoryExists
}

// MetadataCorruptError reports an unparseable metadata record
type MetadataCorruptError struct {
	Path string
	Err  error
}

func (e *MetadataCorruptError) Error() string {
	return fmt.Sprintf("metadata record %s is corrupt: %v", e.Path, e.Err)
}

func (e *MetadataCorruptError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrMetadataCorrupt
func (e *MetadataCorruptError) Is(target error) bool {
	return target == ErrMetadataCorrupt
}

// DuplicateEntryError reports a relative-name collision inside a metadata record
type DuplicateEntryError struct {
	Name           string
	ExistingSource string
	NewSource      string
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("entry '%s' already tracks %s (attempted to track %s)", e.Name, e.ExistingSource, e.NewSource)
}

// Is returns true if the target error is ErrDuplicateEntry
func (e *DuplicateEntryError) Is(target error) bool {
	return target == ErrDuplicateEntry
}

// LinkConflictError reports an existing link that points somewhere other than the recorded source
type LinkConflictError struct {
	LinkPath string
	Target   string
	Source   string
}

func (e *LinkConflictError) Error() string {
	return fmt.Sprintf("link %s points at %s, expected %s", e.LinkPath, e.Target, e.Source)
}

// Is returns true if the target error is ErrLinkConflict
func (e *LinkConflictError) Is(target error) bool {
	return target == ErrLinkConflict
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the subprocess exit code, or -1 if the command did not run
// to completion
func (e *GitCommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// RemoteCreationError reports a failure to create the GitHub mirror
type RemoteCreationError struct {
	RepoName string
	Err      error
}

func (e *RemoteCreationError) Error() string {
	return fmt.Sprintf("failed to create GitHub repository '%s': %v", e.RepoName, e.Err)
}

func (e *RemoteCreationError) Unwrap() error {
	return e.Err
}

// ConfigError reports a configuration load or save failure
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

