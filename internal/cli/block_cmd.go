package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/revisio/internal/domain"
)

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Record time the planner must schedule around",
	}
	cmd.AddCommand(newBlockAddCmd(app))
	cmd.AddCommand(newBlockRecurCmd(app))
	return cmd
}

func newBlockAddCmd(app *App) *cobra.Command {
	var userID, label string
	var from, to string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Block a one-off interval",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			start, err := time.Parse("2006-01-02 15:04", from)
			if err != nil {
				return fmt.Errorf("invalid --from %q, want \"YYYY-MM-DD HH:MM\": %w", from, err)
			}
			end, err := time.Parse("2006-01-02 15:04", to)
			if err != nil {
				return fmt.Errorf("invalid --to %q, want \"YYYY-MM-DD HH:MM\": %w", to, err)
			}

			b := &domain.BlockedInterval{
				Start:  start.UTC(),
				End:    end.UTC(),
				Source: domain.BlockOneOff,
				Label:  label,
			}
			if err := app.Profile.AddBlockedTime(ctx, userID, b); err != nil {
				return err
			}
			fmt.Printf("Blocked %s to %s\n", from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&from, "from", "", "Start (\"YYYY-MM-DD HH:MM\", UTC)")
	cmd.Flags().StringVar(&to, "to", "", "End (\"YYYY-MM-DD HH:MM\", UTC)")
	cmd.Flags().StringVar(&label, "label", "", "Optional label")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newBlockRecurCmd(app *App) *cobra.Command {
	var userID, label string
	var days string
	var from, to string
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "recur",
		Short: "Block a recurring weekly commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			mask, err := parseWeekdays(days)
			if err != nil {
				return err
			}
			startMin, err := domain.ParseClock(from)
			if err != nil {
				return err
			}
			endMin, err := domain.ParseClock(to)
			if err != nil {
				return err
			}

			c := &domain.Commitment{
				UserID:      userID,
				Label:       label,
				Weekdays:    mask,
				DayStartMin: startMin,
				DayEndMin:   endMin,
			}
			if startDate != "" {
				if c.StartDate, err = time.Parse("2006-01-02", startDate); err != nil {
					return fmt.Errorf("invalid --start-date %q: %w", startDate, err)
				}
			}
			if endDate != "" {
				if c.EndDate, err = time.Parse("2006-01-02", endDate); err != nil {
					return fmt.Errorf("invalid --end-date %q: %w", endDate, err)
				}
			}

			if err := app.Profile.AddCommitment(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Recurring block added on %s, %s-%s\n", days, from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&days, "days", "", "Comma-separated weekdays (mon,tue,...) or \"all\"")
	cmd.Flags().StringVar(&from, "from", "", "Daily start (HH:MM)")
	cmd.Flags().StringVar(&to, "to", "", "Daily end (HH:MM)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "First active day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Last active day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&label, "label", "", "Optional label")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

func parseWeekdays(s string) (domain.WeekdayMask, error) {
	if strings.EqualFold(s, "all") {
		return domain.EveryDay, nil
	}
	var mask domain.WeekdayMask
	for _, part := range strings.Split(s, ",") {
		d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return 0, fmt.Errorf("unknown weekday %q", part)
		}
		mask = mask.With(d)
	}
	return mask, nil
}
