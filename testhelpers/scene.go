// Package testhelpers provides test scaffolding: an isolated gitbox state
// directory, a fake hosting client backed by local bare repositories, and
// small filesystem helpers.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eyalev/gitbox/internal/config"
	"github.com/eyalev/gitbox/internal/git"
	"github.com/eyalev/gitbox/internal/runtime"
)

// Scene is an isolated gitbox environment rooted in a temporary directory.
// Pushes land in local bare repositories created by the fake hosting client,
// so no network or credentials are involved.
type Scene struct {
	Dir     string
	Config  *config.Config
	GitHub  *FakeGitHub
	Runtime *runtime.Context
}

// NewScene creates a scene with a fresh state directory and fake adapters.
// Cleanup is registered on the test.
func NewScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir := t.TempDir()

	// Git identity and defaults for commits made during the test, without
	// touching the user's real configuration.
	gitConfig := filepath.Join(tmpDir, "gitconfig")
	configContent := "[user]\n\tname = gitbox-test\n\temail = gitbox-test@local\n[init]\n\tdefaultBranch = main\n"
	if err := os.WriteFile(gitConfig, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write git config: %v", err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", gitConfig)
	t.Setenv("GIT_CONFIG_SYSTEM", "/dev/null")

	cfg, err := config.LoadOrCreateIn(filepath.Join(tmpDir, ".gitbox"))
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	fakeGitHub := NewFakeGitHub(filepath.Join(tmpDir, "remotes"))

	return &Scene{
		Dir:     tmpDir,
		Config:  cfg,
		GitHub:  fakeGitHub,
		Runtime: runtime.NewWithAdapters(cfg, git.NewCLI(), fakeGitHub),
	}
}

// WriteFile creates a file under the scene directory and returns its path
func (s *Scene) WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// WriteDir creates a directory with one file inside and returns the directory path
func (s *Scene) WriteDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(s.Dir, name)
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("failed to create directory %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "content.txt"), []byte("content\n"), 0644); err != nil {
		t.Fatalf("failed to populate directory %s: %v", name, err)
	}
	return dir
}
