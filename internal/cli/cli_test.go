package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runGitbox executes the built binary with an isolated home directory, so
// ~/.gitbox never touches the real one.
func runGitbox(t *testing.T, binary, home string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binary, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestListReposCommand(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "list-repos")
	require.NoError(t, err, "list-repos failed: %s", output)
	require.Contains(t, output, "No repositories found")

	// First run wrote the default configuration
	_, statErr := os.Stat(filepath.Join(home, ".gitbox", "config.yaml"))
	require.NoError(t, statErr)
}

func TestListFilesCommand(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "list-files")
	require.NoError(t, err, "list-files failed: %s", output)
	require.Contains(t, output, "No files are currently being synced")
}

func TestSyncCommandMissingSource(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "sync", filepath.Join(home, "does-not-exist"))
	require.Error(t, err)
	require.Contains(t, output, "source not found")
}

func TestRepoCommandRequiresGetFlag(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "repo", "list")
	require.Error(t, err)
	require.Contains(t, output, "get")
}

func TestRepoCommandUnknownRepo(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "repo", "--get", "nope", "list")
	require.Error(t, err)
	require.Contains(t, output, "repository")
}

func TestDeleteCommandUnknownRepo(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "delete-local-repo", "--get", "nope", "--force")
	require.Error(t, err)
	require.Contains(t, output, "repository")
}

func TestHelpListsCommands(t *testing.T) {
	binary := buildGitboxBinary(t)
	home := t.TempDir()

	output, err := runGitbox(t, binary, home, "--help")
	require.NoError(t, err, "--help failed: %s", output)
	for _, name := range []string{
		"add-repo", "sync", "sync-push", "sync-all-repos",
		"list-repos", "list-files", "repo", "delete-local-repo", "remove-local-repo",
	} {
		require.Contains(t, output, name)
	}
}

func buildGitboxBinary(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	moduleRoot := filepath.Join(wd, "..", "..")

	binaryPath := filepath.Join(t.TempDir(), "gitbox")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitbox")
	cmd.Dir = moduleRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build gitbox binary: %s", string(output))

	return binaryPath
}
