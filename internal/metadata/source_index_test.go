package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	gberrors "github.com/eyalev/gitbox/internal/errors"
)

func TestSourceIndex(t *testing.T) {
	t.Parallel()

	t.Run("missing file reads as empty index", func(t *testing.T) {
		t.Parallel()
		index, err := LoadSourceIndex(filepath.Join(t.TempDir(), "sources.yaml"))
		require.NoError(t, err)
		require.Empty(t, index.Associations)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sources.yaml")
		require.NoError(t, os.WriteFile(path, []byte("associations: {not a list"), 0644))

		_, err := LoadSourceIndex(path)
		require.ErrorIs(t, err, gberrors.ErrMetadataCorrupt)
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sources.yaml")

		index := &SourceIndex{}
		require.True(t, index.Add(Association{Source: "/home/user/.vimrc", Repo: "dotfiles", Name: ".vimrc"}))
		require.True(t, index.Add(Association{Source: "/home/user/.vimrc", Repo: "backup", Name: ".vimrc"}))
		require.NoError(t, index.Save(path))

		loaded, err := LoadSourceIndex(path)
		require.NoError(t, err)
		require.Len(t, loaded.Associations, 2)
		require.ElementsMatch(t, []string{"backup", "dotfiles"}, loaded.ReposFor("/home/user/.vimrc"))
	})

	t.Run("re-adding an association is a no-op", func(t *testing.T) {
		t.Parallel()

		index := &SourceIndex{}
		assoc := Association{Source: "/home/user/.vimrc", Repo: "dotfiles", Name: ".vimrc"}
		require.True(t, index.Add(assoc))
		require.False(t, index.Add(assoc))
		require.Len(t, index.Associations, 1)
		require.True(t, index.IsTracked("/home/user/.vimrc", "dotfiles"))
		require.False(t, index.IsTracked("/home/user/.vimrc", "backup"))
	})

	t.Run("removing a repo drops only its associations", func(t *testing.T) {
		t.Parallel()

		index := &SourceIndex{}
		index.Add(Association{Source: "/a", Repo: "one", Name: "a"})
		index.Add(Association{Source: "/b", Repo: "one", Name: "b"})
		index.Add(Association{Source: "/a", Repo: "two", Name: "a"})

		require.Equal(t, 2, index.RemoveRepo("one"))
		require.Len(t, index.Associations, 1)
		require.Equal(t, []string{"two"}, index.ReposFor("/a"))
		require.Empty(t, index.ReposFor("/b"))
	})
}
