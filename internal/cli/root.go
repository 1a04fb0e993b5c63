// Package cli defines the gitbox command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/config"
	"github.com/eyalev/gitbox/internal/git"
	"github.com/eyalev/gitbox/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitbox",
		Short: "Gitbox keeps files in git-backed repositories without moving them",
		Long: `Gitbox registers local files and directories under named repositories,
each backed by git and mirrored to a private GitHub repository. The original
files stay in place; the repository references them through links.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newAddRepoCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newSyncPushCmd())
	rootCmd.AddCommand(newSyncAllReposCmd())
	rootCmd.AddCommand(newListReposCmd())
	rootCmd.AddCommand(newListFilesCmd())
	rootCmd.AddCommand(newRepoCmd())
	rootCmd.AddCommand(newDeleteLocalRepoCmd("delete-local-repo"))
	rootCmd.AddCommand(newDeleteLocalRepoCmd("remove-local-repo"))

	return rootCmd
}

// newRuntime loads the configuration and wires the real adapters.
// Every gitbox command needs the git binary, so its absence is fatal here.
func newRuntime() (*runtime.Context, error) {
	if !git.IsInstalled() {
		return nil, fmt.Errorf("git is not installed or not on PATH")
	}

	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, err
	}

	return runtime.New(cfg), nil
}
