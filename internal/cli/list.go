package cli

import (
	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
	"github.com/eyalev/gitbox/internal/output"
)

// newListReposCmd creates the list-repos command
func newListReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-repos",
		Short: "List all repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			repos, err := actions.ListReposAction(rt)
			if err != nil {
				return err
			}

			if len(repos) == 0 {
				rt.Splog.Info("No repositories found")
				return nil
			}

			rt.Splog.Info("Repositories:")
			for _, name := range repos {
				rt.Splog.Info("  %s", output.ColorCyan(name))
			}
			return nil
		},
	}
}

// newListFilesCmd creates the list-files command
func newListFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-files",
		Short: "List all synced files across repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			files, err := actions.ListFilesAction(rt)
			if err != nil {
				return err
			}

			if len(files) == 0 {
				rt.Splog.Info("No files are currently being synced")
				return nil
			}

			rt.Splog.Info("Synced files (%d total):", len(files))
			for _, file := range files {
				rt.Splog.Info("  %s -> %s", file.Source, output.ColorCyan(file.Repo))
			}
			return nil
		},
	}
}
