package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/revisio/internal/cli/formatter"
	"github.com/alexanderramin/revisio/internal/contract"
)

func newCycleCmd(app *App) *cobra.Command {
	var workers int
	var budget time.Duration

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Regenerate next week's schedule for every active user",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := contract.NewCycleRequest()
			if workers > 0 {
				req.WorkerLimit = workers
			}
			if budget > 0 {
				req.UserBudget = budget
			}

			report, err := app.Cycle.RunCycle(ctx, req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCycleReport(report))
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "Max concurrent users (default 4)")
	cmd.Flags().DurationVar(&budget, "budget", 0, "Per-user time budget (default 30s)")
	return cmd
}
