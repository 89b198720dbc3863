package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/revisio/internal/contract"
	"github.com/alexanderramin/revisio/internal/domain"
)

// FormatGenerateResponse renders a generated week plan: one row per entry,
// breaks dimmed, followed by any capacity blockers.
func FormatGenerateResponse(resp *contract.GenerateResponse, weekStart time.Time) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(fmt.Sprintf("Week of %s", weekStart.Format("2006-01-02"))))
	b.WriteString("\n\n")

	if len(resp.Entries) == 0 {
		if resp.Infeasible {
			b.WriteString(StyleRed.Render("No sessions could be placed."))
			b.WriteString("\n")
			b.WriteString(StyleDim.Render("Adjust your availability or topic ratings and regenerate."))
			b.WriteString("\n")
		} else {
			b.WriteString(StyleDim.Render("Nothing needed to be scheduled this week."))
			b.WriteString("\n")
		}
		return b.String()
	}

	rows := make([][]string, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		topic := e.TopicID
		if topic == "" {
			topic = StyleDim.Render("(break)")
		}
		rows = append(rows, []string{
			e.ScheduledAt.Format("Mon 15:04"),
			fmt.Sprintf("%dm", e.DurationMin),
			topic,
			e.Rationale.Label,
		})
	}
	b.WriteString(RenderTable([]string{"WHEN", "LEN", "TOPIC", "WHY"}, rows))

	if resp.Infeasible {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render("Insufficient capacity: no topic could be placed."))
		b.WriteString("\n")
	}
	for _, blocker := range resp.Blockers {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("! %s session %d: %s", blocker.TopicID, blocker.SessionNumber, blocker.Message)))
	}
	if len(resp.Blockers) > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSessions renders persisted sessions with their statuses.
func FormatSessions(sessions []*domain.StudySession) string {
	if len(sessions) == 0 {
		return StyleDim.Render("No sessions.") + "\n"
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			shortID(s.ID),
			s.ScheduledAt.Format("Mon Jan 2 15:04"),
			fmt.Sprintf("%dm", s.DurationMin),
			s.TopicID,
			fmt.Sprintf("%d/%d", s.Rationale.SessionNumber, s.Rationale.SessionTotal),
			StatusLabel(s.Status),
		})
	}
	return RenderTable([]string{"ID", "WHEN", "LEN", "TOPIC", "SEQ", "STATUS"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
