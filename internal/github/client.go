// Package github provides the remote-hosting client used to mirror gitbox
// repositories as private GitHub repositories.
package github

import (
	"context"
)

// Client is the remote-hosting surface gitbox consumes. It is only invoked
// while creating a repository, never during sync.
type Client interface {
	// CheckAuthenticated reports whether usable GitHub credentials are available
	CheckAuthenticated(ctx context.Context) bool

	// AuthenticatedUser returns the login of the authenticated user
	AuthenticatedUser(ctx context.Context) (string, error)

	// CreatePrivateRepo creates a private repository and returns its SSH clone
	// URL. If the repository already exists for the authenticated user it is
	// reused: the existing clone URL is returned with created == false.
	CreatePrivateRepo(ctx context.Context, name string) (url string, created bool, err error)

	// RepoExists reports whether owner/name exists on the hosting service
	RepoExists(ctx context.Context, owner, name string) (bool, error)
}
