package cli

import (
	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
	"github.com/eyalev/gitbox/internal/config"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "sync <path>",
		Short: "Register a file or directory under a repository and push it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			opts := actions.SyncOptions{
				Path:       args[0],
				Repo:       repo,
				CreateRepo: true,
			}
			if err := actions.SyncAction(cmd.Context(), rt, opts); err != nil {
				return err
			}

			rt.Splog.Info("File '%s' synced to repository '%s' and pushed to GitHub", args[0], repo)
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", config.DefaultRepoName, "target repository")

	return cmd
}
