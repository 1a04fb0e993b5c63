package cli

import (
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
	"github.com/eyalev/gitbox/internal/output"
)

// newDeleteLocalRepoCmd creates the delete-local-repo command (and its
// remove-local-repo alias, registered as a second command to keep the
// original invocation form).
func newDeleteLocalRepoCmd(use string) *cobra.Command {
	var (
		get   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   use + " --get=<name>",
		Short: "Delete a local repository (the GitHub mirror is kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			desc, err := actions.DescribeDeleteAction(cmd.Context(), rt, get)
			if err != nil {
				return err
			}

			if !force {
				if desc.Name != get {
					rt.Splog.Info("Found repository '%s' matching '%s'", desc.Name, get)
				}
				rt.Splog.Info("Repository '%s' will be deleted:", output.ColorYellow(desc.Name))
				rt.Splog.Info("  Path: %s", desc.Path)
				if desc.RemoteURL != "" {
					rt.Splog.Info("  Remote: %s", desc.RemoteURL)
				}
				if len(desc.Entries) > 0 {
					rt.Splog.Info("  Synced files (%d):", len(desc.Entries))
					for _, entry := range desc.Entries {
						rt.Splog.Info("    %s -> %s", entry.Name, entry.Source)
					}
				} else {
					rt.Splog.Info("  No synced files")
				}
				rt.Splog.Warn("Only the LOCAL repository is deleted; the GitHub repository stays online.")

				confirmed := false
				prompt := &survey.Confirm{
					Message: "Are you sure you want to delete this repository?",
				}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					rt.Splog.Info("Repository deletion cancelled.")
					return nil
				}
			}

			if err := actions.DeleteRepoAction(rt, desc); err != nil {
				return err
			}

			rt.Splog.Info("Repository '%s' has been deleted from local storage.", desc.Name)
			if len(desc.Entries) > 0 {
				rt.Splog.Warn("Links inside the deleted repository are gone; the original files are untouched:")
				for _, entry := range desc.Entries {
					rt.Splog.Info("  %s", filepath.Dir(entry.Source))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&get, "get", "", "repository name to delete (may be partial)")
	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation prompt")
	_ = cmd.MarkFlagRequired("get")

	return cmd
}
