package app

import (
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

// DayStatus summarizes one day of the target week.
type DayStatus struct {
	Date      time.Time
	OpenMin   int
	Scheduled int
}

// WeekStatus is the read-only summary surfaced by the status command.
type WeekStatus struct {
	UserID       string
	WeekStart    time.Time
	Scheduled    int
	Done         int
	Missed       int
	Days         []DayStatus
	Sessions     []*domain.StudySession
	TopicsRated  int
	TopicsActive int
}
