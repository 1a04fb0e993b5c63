// Package runtime provides the context type that carries the configuration
// and adapters into every command. The configuration is loaded once by the
// entry point; components receive it at construction and never mutate it.
package runtime

import (
	"context"

	"github.com/eyalev/gitbox/internal/config"
	"github.com/eyalev/gitbox/internal/git"
	"github.com/eyalev/gitbox/internal/github"
	"github.com/eyalev/gitbox/internal/output"
	"github.com/eyalev/gitbox/internal/registry"
)

// Context provides access to configuration and adapters for commands
type Context struct {
	Config   *config.Config
	Registry *registry.Registry
	Git      git.Service
	Splog    *output.Splog

	// github client is created lazily: only repository creation needs it
	githubClient  github.Client
	githubFactory func(ctx context.Context) (github.Client, error)
}

// New creates a Context wired with the real adapters
func New(cfg *config.Config) *Context {
	gitService := git.NewCLI()

	splog, err := output.NewSplogWithLogFile(cfg.LogFilePath())
	if err != nil {
		splog = output.NewSplog()
	}

	return &Context{
		Config:   cfg,
		Registry: registry.New(cfg.ReposDir, cfg.DefaultBranch, gitService),
		Git:      gitService,
		Splog:    splog,
		githubFactory: func(ctx context.Context) (github.Client, error) {
			return github.NewAPIClient(ctx, cfg.GitHubToken)
		},
	}
}

// NewWithAdapters creates a Context with explicit adapters, used by tests
func NewWithAdapters(cfg *config.Config, gitService git.Service, githubClient github.Client) *Context {
	return &Context{
		Config:       cfg,
		Registry:     registry.New(cfg.ReposDir, cfg.DefaultBranch, gitService),
		Git:          gitService,
		Splog:        output.NewSplog(),
		githubClient: githubClient,
	}
}

// GitHub returns the remote-hosting client, creating it on first use
func (c *Context) GitHub(ctx context.Context) (github.Client, error) {
	if c.githubClient != nil {
		return c.githubClient, nil
	}
	client, err := c.githubFactory(ctx)
	if err != nil {
		return nil, err
	}
	c.githubClient = client
	return client, nil
}
