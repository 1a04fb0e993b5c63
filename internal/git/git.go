package git

import (
	"context"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	gogitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// Service is the version-control operations gitbox consumes. Failures carry
// the subprocess exit status and stderr (GitCommandError) and are terminal
// for the current command; nothing is retried or rolled back.
type Service interface {
	// Init initializes a working copy with the given default branch
	Init(ctx context.Context, dir, branch string) error

	// StageAll stages every change in the working copy
	StageAll(ctx context.Context, dir string) error

	// Commit records the staged changes
	Commit(ctx context.Context, dir, message string) error

	// Push pushes the branch to origin, setting upstream
	Push(ctx context.Context, dir, branch string) error

	// Pull merges the remote branch, tolerating unrelated histories
	Pull(ctx context.Context, dir, branch string) error

	// HasChanges reports whether the working copy has uncommitted changes
	HasChanges(ctx context.Context, dir string) (bool, error)

	// AddRemote registers a named remote
	AddRemote(ctx context.Context, dir, name, url string) error

	// RemoteURL returns the URL of a named remote, or "" if not configured
	RemoteURL(ctx context.Context, dir, name string) (string, error)
}

// CLI implements Service using the git binary, with go-git for repository
// initialization and remote bookkeeping.
type CLI struct{}

// NewCLI creates the git-backed Service
func NewCLI() *CLI {
	return &CLI{}
}

// Init initializes a repository with the given default branch
func (c *CLI) Init(ctx context.Context, dir, branch string) error {
	_, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName(branch),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize repository %s: %w", dir, err)
	}
	return nil
}

// StageAll stages all changes
func (c *CLI) StageAll(ctx context.Context, dir string) error {
	runner := NewCommandRunner(dir)
	_, err := runner.Run(ctx, "add", "--all")
	return err
}

// Commit records the staged changes with the given message
func (c *CLI) Commit(ctx context.Context, dir, message string) error {
	runner := NewCommandRunner(dir)
	_, err := runner.Run(ctx, "commit", "-m", message)
	return err
}

// Push pushes the branch to origin with upstream tracking
func (c *CLI) Push(ctx context.Context, dir, branch string) error {
	runner := NewCommandRunner(dir)
	_, err := runner.Run(ctx, "push", "-u", "origin", branch)
	return err
}

// Pull merges the remote branch. Unrelated histories are allowed because a
// freshly created local repository may meet a remote that already has content.
func (c *CLI) Pull(ctx context.Context, dir, branch string) error {
	runner := NewCommandRunner(dir)
	_, err := runner.Run(ctx, "pull", "--no-rebase", "--allow-unrelated-histories", "origin", branch)
	return err
}

// HasChanges reports whether the working copy is dirty
func (c *CLI) HasChanges(ctx context.Context, dir string) (bool, error) {
	runner := NewCommandRunner(dir)
	out, err := runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

// AddRemote registers a named remote on the repository
func (c *CLI) AddRemote(ctx context.Context, dir, name, url string) error {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	_, err = repo.CreateRemote(&gogitconfig.RemoteConfig{
		Name: name,
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// RemoteURL returns the URL of the named remote, or "" if it is not configured
func (c *CLI) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", dir, err)
	}
	remote, err := repo.Remote(name)
	if err != nil {
		return "", nil
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// HeadSummary describes the current HEAD of a repository
type HeadSummary struct {
	Branch  string
	ShortID string
	Subject string
}

// Head returns branch, short commit id and subject for the repository HEAD.
// A repository without commits yields an empty summary and no error.
func Head(dir string) (HeadSummary, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return HeadSummary{}, fmt.Errorf("failed to open repository %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return HeadSummary{}, nil
	}

	summary := HeadSummary{Branch: head.Name().Short()}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return summary, nil
	}

	summary.ShortID = head.Hash().String()[:8]
	summary.Subject = strings.SplitN(strings.TrimSpace(commit.Message), "\n", 2)[0]
	return summary, nil
}
