package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/revisio/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	var userID, week string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a week's progress and remaining availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := resolveWeekStart(week)
			if err != nil {
				return err
			}
			status, err := app.Status.GetWeekStatus(ctx, userID, weekStart)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatWeekStatus(status))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next week")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
