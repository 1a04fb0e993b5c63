package github

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/require"
)

func TestSSHCloneURL(t *testing.T) {
	require.Equal(t, "git@github.com:eyalev/dotfiles.git", SSHCloneURL("eyalev", "dotfiles"))
}

func apiError(message string) *github.ErrorResponse {
	u, _ := url.Parse("https://api.github.com/user/repos")
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: http.StatusUnprocessableEntity,
			Request:    &http.Request{Method: http.MethodPost, URL: u},
		},
		Errors: []github.Error{{Message: message}},
	}
}

func TestIsNameTaken(t *testing.T) {
	t.Run("github error response", func(t *testing.T) {
		require.True(t, isNameTaken(apiError("name already exists on this account")))
	})

	t.Run("other github error", func(t *testing.T) {
		require.False(t, isNameTaken(apiError("repository is archived")))
	})

	t.Run("plain error", func(t *testing.T) {
		require.False(t, isNameTaken(errors.New("network unreachable")))
		require.True(t, isNameTaken(errors.New("repository already exists")))
	})
}
