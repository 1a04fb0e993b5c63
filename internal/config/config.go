package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

// DefaultRepoName is the repository used when sync is invoked without --repo
const DefaultRepoName = "gitbox-default"

// Config represents the process-wide gitbox configuration
type Config struct {
	ReposDir      string `yaml:"repos_dir"`
	DefaultBranch string `yaml:"default_branch"`
	GitHubToken   string `yaml:"github_token,omitempty"`

	// gitboxDir is where the config, source index and log files live.
	// Not serialized; derived from the config location.
	gitboxDir string
}

// GitboxDir returns the directory holding gitbox state (~/.gitbox by default)
func (c *Config) GitboxDir() string {
	return c.gitboxDir
}

// RepoPath returns the on-disk location of a named repository
func (c *Config) RepoPath(name string) string {
	return filepath.Join(c.ReposDir, name)
}

// SourceIndexPath returns the location of the source-side tracking index
func (c *Config) SourceIndexPath() string {
	return filepath.Join(c.gitboxDir, "sources.yaml")
}

// LogFilePath returns the location of the rotated debug log
func (c *Config) LogFilePath() string {
	return filepath.Join(c.gitboxDir, "gitbox.log")
}

// DefaultGitboxDir returns ~/.gitbox
func DefaultGitboxDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".gitbox"), nil
}

func defaults(gitboxDir string) *Config {
	return &Config{
		ReposDir:      filepath.Join(gitboxDir, "repos"),
		DefaultBranch: "main",
		gitboxDir:     gitboxDir,
	}
}

// LoadOrCreate reads the configuration from ~/.gitbox/config.yaml, writing a
// default file on first run. The repos directory is created if missing.
func LoadOrCreate() (*Config, error) {
	gitboxDir, err := DefaultGitboxDir()
	if err != nil {
		return nil, err
	}
	return LoadOrCreateIn(gitboxDir)
}

// LoadOrCreateIn is LoadOrCreate with an explicit state directory, used by tests.
func LoadOrCreateIn(gitboxDir string) (*Config, error) {
	if err := os.MkdirAll(gitboxDir, 0750); err != nil {
		return nil, &gberrors.ConfigError{Path: gitboxDir, Err: err}
	}

	configPath := filepath.Join(gitboxDir, "config.yaml")
	cfg := defaults(gitboxDir)

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &gberrors.ConfigError{Path: configPath, Err: fmt.Errorf("failed to parse: %w", err)}
		}
		cfg.gitboxDir = gitboxDir
		if cfg.ReposDir == "" {
			cfg.ReposDir = filepath.Join(gitboxDir, "repos")
		}
		if cfg.DefaultBranch == "" {
			cfg.DefaultBranch = "main"
		}
	case os.IsNotExist(err):
		if err := cfg.save(configPath); err != nil {
			return nil, err
		}
	default:
		return nil, &gberrors.ConfigError{Path: configPath, Err: err}
	}

	if err := os.MkdirAll(cfg.ReposDir, 0750); err != nil {
		return nil, &gberrors.ConfigError{Path: cfg.ReposDir, Err: err}
	}

	return cfg, nil
}

func (c *Config) save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return &gberrors.ConfigError{Path: configPath, Err: fmt.Errorf("failed to serialize: %w", err)}
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return &gberrors.ConfigError{Path: configPath, Err: err}
	}
	return nil
}
