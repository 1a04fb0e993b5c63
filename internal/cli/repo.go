package cli

import (
	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
	"github.com/eyalev/gitbox/internal/output"
)

// newRepoCmd creates the repo command with its list/info/sync subcommands
func newRepoCmd() *cobra.Command {
	var get string

	cmd := &cobra.Command{
		Use:   "repo --get=<name> <action>",
		Short: "Operate on a single repository",
	}

	cmd.PersistentFlags().StringVar(&get, "get", "", "repository name (may be partial)")
	_ = cmd.MarkPersistentFlagRequired("get")

	cmd.AddCommand(newRepoListCmd(&get))
	cmd.AddCommand(newRepoInfoCmd(&get))
	cmd.AddCommand(newRepoSyncCmd(&get))

	return cmd
}

func newRepoListCmd(get *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List files in the repository, with link validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			name, entries, err := actions.RepoEntriesAction(rt, *get)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				rt.Splog.Info("No files in repository '%s'", name)
				return nil
			}

			rt.Splog.Info("Files in repository '%s':", name)
			for _, entry := range entries {
				status := output.ColorGreen("ok")
				if !entry.LinkOK {
					status = output.ColorRed("broken link")
				}
				rt.Splog.Info("  %s -> %s (%s)", entry.Name, entry.Source, status)
			}
			return nil
		},
	}
}

func newRepoInfoCmd(get *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show repository information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			info, err := actions.RepoInfoAction(cmd.Context(), rt, *get)
			if err != nil {
				return err
			}

			rt.Splog.Info("Repository: %s", info.Name)
			rt.Splog.Info("Path: %s", info.Path)
			if info.RemoteURL != "" {
				rt.Splog.Info("Remote URL: %s", info.RemoteURL)
			}
			if info.Branch != "" {
				rt.Splog.Info("Branch: %s", info.Branch)
			}
			if info.LatestID != "" {
				rt.Splog.Info("Latest commit: %s - %s", info.LatestID, info.Latest)
			}
			rt.Splog.Info("Tracked files: %d", len(info.Entries))
			for _, entry := range info.Entries {
				kind := "file"
				if entry.IsDirectory {
					kind = "dir"
				}
				rt.Splog.Info("  %s -> %s (%s)", entry.Name, entry.Source, output.Dim(kind))
			}
			return nil
		},
	}
}

func newRepoSyncCmd(get *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync the repository with GitHub (pull/push)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			if err := actions.SyncRepoAction(cmd.Context(), rt, *get); err != nil {
				return err
			}

			rt.Splog.Info("Repository '%s' synced with GitHub", *get)
			return nil
		},
	}
}
