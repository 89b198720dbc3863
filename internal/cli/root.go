package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/alexanderramin/revisio/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedule service.ScheduleService
	Sessions service.SessionService
	Cycle    service.CycleService
	Profile  service.ProfileService
	Status   service.StatusService
	Import   service.ImportService
}

// NewRootCmd creates the top-level "revisio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "revisio",
		Short: "Spaced-repetition study planner",
	}

	root.AddCommand(
		newUserCmd(app),
		newRateCmd(app),
		newPrefsCmd(app),
		newBlockCmd(app),
		newGenerateCmd(app),
		newSessionCmd(app),
		newCycleCmd(app),
		newStatusCmd(app),
		newImportCmd(app),
	)

	return root
}

const dateLayout = "2006-01-02"

// resolveWeekStart parses a --week flag value, defaulting to the upcoming
// Monday when empty. The parsed date must itself be a Monday.
func resolveWeekStart(flag string) (time.Time, error) {
	if flag == "" {
		return domain.MondayOf(time.Now().UTC()).AddDate(0, 0, domain.DaysPerWeek), nil
	}
	t, err := time.Parse(dateLayout, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week date %q, want YYYY-MM-DD: %w", flag, err)
	}
	t = t.UTC()
	if !domain.IsWeekStart(t) {
		return time.Time{}, fmt.Errorf("week date %s is not a Monday", flag)
	}
	return t, nil
}
