package testhelpers

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// FakeGitHub implements the hosting client against local bare repositories,
// so add-repo and push exercise the real git plumbing without a network.
type FakeGitHub struct {
	// Dir is where the bare "remote" repositories are created
	Dir string

	// Authenticated controls CheckAuthenticated
	Authenticated bool

	// User is the login reported by AuthenticatedUser
	User string

	// CreateCalls records the names passed to CreatePrivateRepo
	CreateCalls []string
}

// NewFakeGitHub creates a fake hosting client storing remotes under dir
func NewFakeGitHub(dir string) *FakeGitHub {
	return &FakeGitHub{Dir: dir, Authenticated: true, User: "tester"}
}

// CheckAuthenticated reports the configured authentication state
func (f *FakeGitHub) CheckAuthenticated(ctx context.Context) bool {
	return f.Authenticated
}

// AuthenticatedUser returns the configured login
func (f *FakeGitHub) AuthenticatedUser(ctx context.Context) (string, error) {
	if !f.Authenticated {
		return "", gberrors.ErrNotAuthenticated
	}
	return f.User, nil
}

// CreatePrivateRepo creates a local bare repository and returns its path as
// the clone URL. An existing repository is reused, mirroring the real client.
func (f *FakeGitHub) CreatePrivateRepo(ctx context.Context, name string) (string, bool, error) {
	remotePath := f.RemotePath(name)
	if _, err := os.Stat(remotePath); err == nil {
		return remotePath, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(remotePath), 0750); err != nil {
		return "", false, err
	}
	cmd := exec.CommandContext(ctx, "git", "init", "--bare", remotePath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", false, fmt.Errorf("failed to create bare remote: %s: %w", out, err)
	}

	f.CreateCalls = append(f.CreateCalls, name)
	return remotePath, true, nil
}

// RepoExists reports whether the bare repository exists
func (f *FakeGitHub) RepoExists(ctx context.Context, owner, name string) (bool, error) {
	_, err := os.Stat(f.RemotePath(name))
	return err == nil, nil
}

// RemotePath returns where the bare repository for name lives
func (f *FakeGitHub) RemotePath(name string) string {
	return filepath.Join(f.Dir, name+".git")
}
