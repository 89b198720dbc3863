package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/revisio/internal/contract"
)

// FormatCycleReport renders the aggregate outcome of a regeneration cycle.
func FormatCycleReport(report *contract.CycleReport) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Regeneration cycle for week of %s", report.WeekStart.Format("2006-01-02"))))
	b.WriteString("\n\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("  success: %d", report.SuccessCount)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  skipped: %d", report.SkippedCount)))
	b.WriteString("\n")
	if report.FailedCount > 0 {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  failed:  %d", report.FailedCount)))
	} else {
		b.WriteString(StyleDim.Render("  failed:  0"))
	}
	b.WriteString("\n")

	for _, e := range report.Errors {
		b.WriteString(StyleRed.Render(fmt.Sprintf("  ! %s: %s", e.UserID, e.Error)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatWeekStatus renders the week summary shown by the status command.
func FormatWeekStatus(status *contract.WeekStatus) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Week of %s", status.WeekStart.Format("2006-01-02"))))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Topics: %d rated, %d active\n", status.TopicsRated, status.TopicsActive))
	b.WriteString(fmt.Sprintf("Sessions: %s  %s  %s\n\n",
		StyleBlue.Render(fmt.Sprintf("%d scheduled", status.Scheduled)),
		StyleGreen.Render(fmt.Sprintf("%d done", status.Done)),
		StyleRed.Render(fmt.Sprintf("%d missed", status.Missed)),
	))

	rows := make([][]string, 0, len(status.Days))
	for _, d := range status.Days {
		rows = append(rows, []string{
			d.Date.Format("Mon Jan 2"),
			fmt.Sprintf("%dh%02dm", d.OpenMin/60, d.OpenMin%60),
			fmt.Sprintf("%d", d.Scheduled),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "OPEN", "SESSIONS"}, rows))
	return b.String()
}
