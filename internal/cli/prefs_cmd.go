package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/revisio/internal/domain"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage study-time preferences",
	}
	cmd.AddCommand(newPrefsSetCmd(app))
	cmd.AddCommand(newPrefsShowCmd(app))
	return cmd
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var userID string
	var weekdayStart, weekdayEnd string
	var weekendStart, weekendEnd string
	var sameTimes bool
	var sessionMin int
	var reserve float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set daily study windows and session defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p := &domain.TimePreferences{
				UserID:          userID,
				UseWeekdayTimes: sameTimes,
				SessionMinutes:  sessionMin,
				SlotReservePct:  reserve,
			}
			var err error
			if p.WeekdayStartMin, err = domain.ParseClock(weekdayStart); err != nil {
				return err
			}
			if p.WeekdayEndMin, err = domain.ParseClock(weekdayEnd); err != nil {
				return err
			}
			if !sameTimes {
				if weekendStart == "" || weekendEnd == "" {
					return fmt.Errorf("weekend window required unless --same-times is set")
				}
				if p.WeekendStartMin, err = domain.ParseClock(weekendStart); err != nil {
					return err
				}
				if p.WeekendEndMin, err = domain.ParseClock(weekendEnd); err != nil {
					return err
				}
			}

			if err := app.Profile.SetPreferences(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Preferences saved for user %s\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&weekdayStart, "weekday-start", "08:00", "Weekday window start (HH:MM)")
	cmd.Flags().StringVar(&weekdayEnd, "weekday-end", "21:00", "Weekday window end (HH:MM)")
	cmd.Flags().StringVar(&weekendStart, "weekend-start", "", "Weekend window start (HH:MM)")
	cmd.Flags().StringVar(&weekendEnd, "weekend-end", "", "Weekend window end (HH:MM)")
	cmd.Flags().BoolVar(&sameTimes, "same-times", false, "Use the weekday window on weekends too")
	cmd.Flags().IntVar(&sessionMin, "session-minutes", domain.DefaultSessionMinutes, "Default session length in minutes")
	cmd.Flags().Float64Var(&reserve, "reserve", domain.DefaultSlotReservePct, "Fraction of free slots kept unscheduled")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Profile.GetPreferences(ctx, userID)
			if err != nil {
				return err
			}
			fmt.Printf("Weekday window: %s-%s\n", domain.FormatClock(p.WeekdayStartMin), domain.FormatClock(p.WeekdayEndMin))
			if p.UseWeekdayTimes {
				fmt.Println("Weekend window: same as weekdays")
			} else {
				fmt.Printf("Weekend window: %s-%s\n", domain.FormatClock(p.WeekendStartMin), domain.FormatClock(p.WeekendEndMin))
			}
			fmt.Printf("Session length: %d min\n", p.SessionMinutes)
			fmt.Printf("Slot reserve:   %.0f%%\n", p.SlotReservePct*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
