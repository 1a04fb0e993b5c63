package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
	"github.com/eyalev/gitbox/internal/config"
)

// newSyncPushCmd creates the sync-push command
func newSyncPushCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "sync-push [file]",
		Short: "Push local changes of a repository to its remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			opts := actions.SyncPushOptions{Repo: repo}
			if len(args) == 1 {
				opts.File = args[0]
			}
			if err := actions.SyncPushAction(cmd.Context(), rt, opts); err != nil {
				return err
			}

			if opts.File != "" {
				rt.Splog.Info("Successfully pushed file '%s' to repository '%s'", opts.File, repo)
			} else {
				rt.Splog.Info("Successfully pushed local changes to repository '%s'", repo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", config.DefaultRepoName, "target repository")

	return cmd
}

// newSyncAllReposCmd creates the sync-all-repos command
func newSyncAllReposCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync-all-repos",
		Short: "Sync every repository with its remote",
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
				rt.Splog.Info("No repositories found to sync")
				return nil
			}

			rt.Splog.Info("Syncing %d repositories with remotes...", len(repos))
			failed := 0
			for _, name := range repos {
				if err := actions.SyncRepoAction(cmd.Context(), rt, name); err != nil {
					rt.Splog.Error("Failed to sync '%s': %v", name, err)
					failed++
					continue
				}
				rt.Splog.Info("Synced '%s'", name)
			}
			rt.Splog.Info("Sync completed")

			if failed > 0 {
				return fmt.Errorf("%d of %d repositories failed to sync", failed, len(repos))
			}
			return nil
		},
	}
}
