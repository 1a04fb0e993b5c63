package cli

import (
	"github.com/spf13/cobra"

	"github.com/eyalev/gitbox/internal/actions"
)

// newAddRepoCmd creates the add-repo command
func newAddRepoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-repo <name>",
		Short: "Create a new repository and its private GitHub mirror",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			if err := actions.AddRepoAction(cmd.Context(), rt, args[0]); err != nil {
				return err
			}

			rt.Splog.Info("Repository '%s' created and pushed to GitHub", args[0])
			return nil
		},
	}
}
