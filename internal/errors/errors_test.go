package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepositoryNotFoundErrorMessage(t *testing.T) {
	err := NewRepositoryNotFoundError("nope", nil)
	require.Equal(t, "repository 'nope' does not exist", err.Error())
	require.ErrorIs(t, err, ErrRepositoryNotFound)

	err = NewRepositoryNotFoundError("nope", []string{"dotfiles", "notes"})
	require.Equal(t, "repository 'nope' does not exist. Available repositories: dotfiles, notes", err.Error())
}

func TestAmbiguousRepositoryErrorMessage(t *testing.T) {
	err := &AmbiguousRepositoryError{Name: "do", Matches: []string{"dotfiles", "docs"}}
	require.Equal(t, "multiple repositories match 'do': dotfiles, docs. Please be more specific", err.Error())
	require.ErrorIs(t, err, ErrRepositoryNotFound)
}

func TestGitCommandErrorExitCode(t *testing.T) {
	err := NewGitCommandError("git", []string{"status"}, "", "fatal", errors.New("not an exit error"))
	require.Equal(t, -1, err.ExitCode())
}
