package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a learner profile import.
// It sets up a user, their study windows, topic ratings, and standing
// obligations in one file instead of a sequence of CLI calls.
type ImportSchema struct {
	User        UserImport         `json:"user"`
	Preferences *PreferencesImport `json:"preferences,omitempty"`
	Ratings     []RatingImport     `json:"ratings"`
	Commitments []CommitmentImport `json:"commitments,omitempty"`
	Blocked     []BlockedImport    `json:"blocked,omitempty"`
}

// UserImport defines the learner-level fields in the import file.
type UserImport struct {
	Name string `json:"name"`
}

// PreferencesImport defines daily study windows. Times are "HH:MM".
// Weekend fields are ignored when same_times is set.
type PreferencesImport struct {
	WeekdayStart   string   `json:"weekday_start"`
	WeekdayEnd     string   `json:"weekday_end"`
	WeekendStart   string   `json:"weekend_start,omitempty"`
	WeekendEnd     string   `json:"weekend_end,omitempty"`
	SameTimes      bool     `json:"same_times,omitempty"`
	SessionMinutes *int     `json:"session_minutes,omitempty"`
	SlotReservePct *float64 `json:"slot_reserve_pct,omitempty"`
}

// RatingImport assigns a confidence rating to one topic.
type RatingImport struct {
	Topic  string `json:"topic"`
	Rating int    `json:"rating"`
}

// CommitmentImport defines a recurring weekly obligation.
type CommitmentImport struct {
	Label     string   `json:"label,omitempty"`
	Days      []string `json:"days"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

// BlockedImport defines a one-off unavailable interval. Timestamps are
// "YYYY-MM-DD HH:MM", interpreted as UTC.
type BlockedImport struct {
	Label string `json:"label,omitempty"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// LoadImportFile reads and parses an import file from disk.
func LoadImportFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
