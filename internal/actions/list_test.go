package actions_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eyalev/gitbox/internal/actions"
	gberrors "github.com/eyalev/gitbox/internal/errors"
	"github.com/eyalev/gitbox/internal/metadata"
	"github.com/eyalev/gitbox/testhelpers"
)

func TestListRepos(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	names, err := actions.ListReposAction(scene.Runtime)
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, actions.AddRepoAction(ctx, scene.Runtime, "notes"))
	require.NoError(t, actions.AddRepoAction(ctx, scene.Runtime, "dotfiles"))

	names, err = actions.ListReposAction(scene.Runtime)
	require.NoError(t, err)
	require.Equal(t, []string{"dotfiles", "notes"}, names)
}

func TestRepoEntriesReportsLinkValidity(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	source := scene.WriteFile(t, ".vimrc", "set number\n")
	opts := actions.SyncOptions{Path: source, Repo: "dotfiles", CreateRepo: true}
	require.NoError(t, actions.SyncAction(ctx, scene.Runtime, opts))

	actual, statuses, err := actions.RepoEntriesAction(scene.Runtime, "dotfiles")
	require.NoError(t, err)
	require.Equal(t, "dotfiles", actual)
	require.Len(t, statuses, 1)
	require.Equal(t, ".vimrc", statuses[0].Name)
	require.True(t, statuses[0].LinkOK)

	// Removing the source breaks the link but the entry stays listed
	require.NoError(t, os.Remove(source))

	_, statuses, err = actions.RepoEntriesAction(scene.Runtime, "dotfiles")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	require.False(t, statuses[0].LinkOK)
}

func TestRepoEntriesUnknownRepo(t *testing.T) {
	scene := testhelpers.NewScene(t)

	_, _, err := actions.RepoEntriesAction(scene.Runtime, "nope")
	require.ErrorIs(t, err, gberrors.ErrRepositoryNotFound)
}

func TestListFilesAcrossRepos(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	vimrc := scene.WriteFile(t, ".vimrc", "set number\n")
	bashrc := scene.WriteFile(t, ".bashrc", "export EDITOR=vim\n")

	require.NoError(t, actions.SyncAction(ctx, scene.Runtime, actions.SyncOptions{Path: vimrc, Repo: "dotfiles", CreateRepo: true}))
	require.NoError(t, actions.SyncAction(ctx, scene.Runtime, actions.SyncOptions{Path: bashrc, Repo: "shell", CreateRepo: true}))

	files, err := actions.ListFilesAction(scene.Runtime)
	require.NoError(t, err)
	require.Len(t, files, 2)

	byName := map[string]string{}
	for _, f := range files {
		byName[f.Name] = f.Repo
	}
	require.Equal(t, "dotfiles", byName[".vimrc"])
	require.Equal(t, "shell", byName[".bashrc"])
}

func TestRepoInfo(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	source := scene.WriteFile(t, ".vimrc", "set number\n")
	require.NoError(t, actions.SyncAction(ctx, scene.Runtime, actions.SyncOptions{Path: source, Repo: "dotfiles", CreateRepo: true}))

	info, err := actions.RepoInfoAction(ctx, scene.Runtime, "dot")
	require.NoError(t, err)
	require.Equal(t, "dotfiles", info.Name)
	require.Equal(t, scene.Config.RepoPath("dotfiles"), info.Path)
	require.Equal(t, scene.GitHub.RemotePath("dotfiles"), info.RemoteURL)
	require.Equal(t, "main", info.Branch)
	require.NotEmpty(t, info.LatestID)
	require.Equal(t, "Add .vimrc", info.Latest)
	require.Len(t, info.Entries, 1)
}

func TestDeleteRepo(t *testing.T) {
	scene := testhelpers.NewScene(t)
	ctx := context.Background()

	source := scene.WriteFile(t, ".vimrc", "set number\n")
	require.NoError(t, actions.SyncAction(ctx, scene.Runtime, actions.SyncOptions{Path: source, Repo: "dotfiles", CreateRepo: true}))

	desc, err := actions.DescribeDeleteAction(ctx, scene.Runtime, "dotfiles")
	require.NoError(t, err)
	require.Equal(t, "dotfiles", desc.Name)
	require.Equal(t, scene.GitHub.RemotePath("dotfiles"), desc.RemoteURL)
	require.Len(t, desc.Entries, 1)

	require.NoError(t, actions.DeleteRepoAction(scene.Runtime, desc))

	// Local store gone, original file untouched
	_, err = os.Stat(desc.Path)
	require.True(t, os.IsNotExist(err))
	content, err := os.ReadFile(source)
	require.NoError(t, err)
	require.Equal(t, "set number\n", string(content))

	// Source index no longer mentions the repository
	index, err := metadata.LoadSourceIndex(scene.Config.SourceIndexPath())
	require.NoError(t, err)
	require.Empty(t, index.ReposFor(resolved(t, source)))

	// Remote mirror survives deletion
	_, err = os.Stat(filepath.Join(scene.GitHub.RemotePath("dotfiles"), "HEAD"))
	require.NoError(t, err)

	names, err := actions.ListReposAction(scene.Runtime)
	require.NoError(t, err)
	require.Empty(t, names)
}
