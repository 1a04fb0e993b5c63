package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gberrors "github.com/eyalev/gitbox/internal/errors"
	"github.com/eyalev/gitbox/internal/git"
)

// newRepo initializes a working copy in a temp dir with an isolated git
// identity so tests never touch the user's configuration.
func newRepo(t *testing.T) (*git.CLI, string) {
	t.Helper()

	tmp := t.TempDir()
	gitconfig := filepath.Join(tmp, "gitconfig")
	require.NoError(t, os.WriteFile(gitconfig, []byte("[user]\n\tname = gitbox-test\n\temail = test@gitbox.local\n[init]\n\tdefaultBranch = main\n"), 0644))
	t.Setenv("GIT_CONFIG_GLOBAL", gitconfig)
	t.Setenv("GIT_CONFIG_SYSTEM", "/dev/null")

	dir := filepath.Join(tmp, "repo")
	svc := git.NewCLI()
	require.NoError(t, svc.Init(context.Background(), dir, "main"))
	return svc, dir
}

func TestInitUsesRequestedBranch(t *testing.T) {
	_, dir := newRepo(t)

	head, err := git.RunGitCommandInDir(dir, "symbolic-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "refs/heads/main", head)
}

func TestStageCommitAndHead(t *testing.T) {
	svc, dir := newRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello\n"), 0644))

	hasChanges, err := svc.HasChanges(ctx, dir)
	require.NoError(t, err)
	require.True(t, hasChanges)

	require.NoError(t, svc.StageAll(ctx, dir))
	require.NoError(t, svc.Commit(ctx, dir, "Add file"))

	hasChanges, err = svc.HasChanges(ctx, dir)
	require.NoError(t, err)
	require.False(t, hasChanges)

	head, err := git.Head(dir)
	require.NoError(t, err)
	require.Equal(t, "main", head.Branch)
	require.Equal(t, "Add file", head.Subject)
	require.Len(t, head.ShortID, 8)
}

func TestHeadOnEmptyRepo(t *testing.T) {
	_, dir := newRepo(t)

	head, err := git.Head(dir)
	require.NoError(t, err)
	require.Empty(t, head.Branch)
	require.Empty(t, head.Subject)
}

func TestRemotes(t *testing.T) {
	svc, dir := newRepo(t)
	ctx := context.Background()

	url, err := svc.RemoteURL(ctx, dir, "origin")
	require.NoError(t, err)
	require.Empty(t, url)

	require.NoError(t, svc.AddRemote(ctx, dir, "origin", "git@github.com:someone/repo.git"))

	url, err = svc.RemoteURL(ctx, dir, "origin")
	require.NoError(t, err)
	require.Equal(t, "git@github.com:someone/repo.git", url)
}

func TestPushAndPullAgainstBareRemote(t *testing.T) {
	svc, dir := newRepo(t)
	ctx := context.Background()

	bare := filepath.Join(t.TempDir(), "remote.git")
	_, err := git.RunGitCommandInDir("", "init", "--bare", bare)
	require.NoError(t, err)
	require.NoError(t, svc.AddRemote(ctx, dir, "origin", bare))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello\n"), 0644))
	require.NoError(t, svc.StageAll(ctx, dir))
	require.NoError(t, svc.Commit(ctx, dir, "Add file"))
	require.NoError(t, svc.Push(ctx, dir, "main"))

	// The bare remote was created under the same isolated config, so its
	// default branch matches the branch being pushed
	head, err := git.RunGitCommandInDir(bare, "symbolic-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "refs/heads/main", head)

	count, err := git.RunGitCommandInDir(bare, "rev-list", "--count", "main")
	require.NoError(t, err)
	require.Equal(t, "1", count)

	require.NoError(t, svc.Pull(ctx, dir, "main"))
}

func TestCommandErrorCarriesStderr(t *testing.T) {
	_, dir := newRepo(t)

	_, err := git.RunGitCommandInDir(dir, "rev-parse", "not-a-ref")
	require.Error(t, err)

	var gitErr *gberrors.GitCommandError
	require.ErrorAs(t, err, &gitErr)
	require.NotEmpty(t, gitErr.Stderr)
	require.Equal(t, []string{"rev-parse", "not-a-ref"}, gitErr.Args)
	require.NotEqual(t, 0, gitErr.ExitCode())
}

func TestCommandTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := git.NewCommandRunner("")
	_, err := runner.Run(ctx, "status")
	require.Error(t, err)
}

func TestIsInstalled(t *testing.T) {
	require.True(t, git.IsInstalled())
}
