package github

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// APIClient implements Client using the GitHub REST API
type APIClient struct {
	client *github.Client
}

// NewAPIClient creates an API-backed client. The token is taken from the
// configuration if set, otherwise from the GITHUB_TOKEN environment variable
// or the gh CLI.
func NewAPIClient(ctx context.Context, configToken string) (*APIClient, error) {
	token := configToken
	if token == "" {
		var err error
		token, err = resolveToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", gberrors.ErrNotAuthenticated, err)
		}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &APIClient{client: github.NewClient(tc)}, nil
}

// CheckAuthenticated reports whether the credentials are accepted by GitHub
func (c *APIClient) CheckAuthenticated(ctx context.Context) bool {
	_, _, err := c.client.Users.Get(ctx, "")
	return err == nil
}

// AuthenticatedUser returns the login of the token's owner
func (c *APIClient) AuthenticatedUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// CreatePrivateRepo creates a private repository under the authenticated user
// and returns its SSH clone URL. A mirror left over from a previous install
// is reused rather than treated as a failure.
func (c *APIClient) CreatePrivateRepo(ctx context.Context, name string) (string, bool, error) {
	repo := &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(true),
	}

	created, _, err := c.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		if !isNameTaken(err) {
			return "", false, &gberrors.RemoteCreationError{RepoName: name, Err: err}
		}
		user, userErr := c.AuthenticatedUser(ctx)
		if userErr != nil {
			return "", false, userErr
		}
		return SSHCloneURL(user, name), false, nil
	}

	return created.GetSSHURL(), true, nil
}

// RepoExists reports whether owner/name exists
func (c *APIClient) RepoExists(ctx context.Context, owner, name string) (bool, error) {
	_, resp, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check repository %s/%s: %w", owner, name, err)
	}
	return true, nil
}

// isNameTaken reports whether a repository creation failure was caused by the
// name already existing on the hosting service
func isNameTaken(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		for _, e := range ghErr.Errors {
			if strings.Contains(strings.ToLower(e.Message), "name already exists") {
				return true
			}
		}
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// resolveToken gets a GitHub token from the environment or the gh CLI
func resolveToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	out, err := exec.CommandContext(ctx, "gh", "auth", "token").Output()
	if err != nil {
		return "", fmt.Errorf("no GITHUB_TOKEN set and 'gh auth token' failed: %w", err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}

// SSHCloneURL builds the SSH clone URL for owner/name, used when the remote
// repository already exists and creation is skipped
func SSHCloneURL(owner, name string) string {
	return fmt.Sprintf("git@github.com:%s/%s.git", owner, name)
}
