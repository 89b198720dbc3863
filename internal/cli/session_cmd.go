package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/revisio/internal/cli/formatter"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and update individual study sessions",
	}
	cmd.AddCommand(newSessionListCmd(app))
	cmd.AddCommand(newSessionDoneCmd(app))
	cmd.AddCommand(newSessionMissCmd(app))
	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var userID, week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := resolveWeekStart(week)
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListWeek(ctx, userID, weekStart)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next week")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newSessionDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <session-id>",
		Short: "Mark a session completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := app.Sessions.MarkDone(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("Session marked done")
			return nil
		},
	}
	return cmd
}

func newSessionMissCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "miss <session-id>",
		Short: "Mark a session missed and try to reschedule it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			result, err := app.Sessions.MarkMissed(ctx, args[0])
			if err != nil {
				return err
			}
			if !result.Rescheduled {
				fmt.Println("Session marked missed; no replacement slot found in the next two weeks")
				return nil
			}
			fmt.Printf("Session rescheduled to %s\n", result.NewScheduledAt.Format("Mon Jan 2 15:04"))
			if n := len(result.ShiftedIDs); n > 0 {
				fmt.Printf("Shifted %d later session(s) of the same topic to preserve gaps\n", n)
			}
			return nil
		},
	}
	return cmd
}
