package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Set up a learner profile from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := app.Import.ImportProfile(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported profile for %s (user %s)\n", user.Name, user.ID)
			return nil
		},
	}
	return cmd
}
