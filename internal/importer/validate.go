package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/domain"
)

var validDayNames = map[string]bool{
	"sun": true, "mon": true, "tue": true, "wed": true,
	"thu": true, "fri": true, "sat": true,
}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	if schema.User.Name == "" {
		errs = append(errs, fmt.Errorf("user.name is required"))
	}

	errs = append(errs, validatePreferences(schema.Preferences)...)
	errs = append(errs, validateRatings(schema.Ratings)...)
	errs = append(errs, validateCommitments(schema.Commitments)...)
	errs = append(errs, validateBlocked(schema.Blocked)...)

	return errs
}

func validatePreferences(p *PreferencesImport) []error {
	if p == nil {
		return nil
	}
	var errs []error

	errs = append(errs, checkClock("preferences.weekday_start", p.WeekdayStart, true)...)
	errs = append(errs, checkClock("preferences.weekday_end", p.WeekdayEnd, true)...)
	if !p.SameTimes {
		errs = append(errs, checkClock("preferences.weekend_start", p.WeekendStart, true)...)
		errs = append(errs, checkClock("preferences.weekend_end", p.WeekendEnd, true)...)
	}
	if p.SessionMinutes != nil && *p.SessionMinutes <= 0 {
		errs = append(errs, fmt.Errorf("preferences.session_minutes must be positive, got %d", *p.SessionMinutes))
	}
	if p.SlotReservePct != nil && (*p.SlotReservePct < 0 || *p.SlotReservePct >= 1) {
		errs = append(errs, fmt.Errorf("preferences.slot_reserve_pct must be in [0,1), got %.2f", *p.SlotReservePct))
	}
	return errs
}

func validateRatings(ratings []RatingImport) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, r := range ratings {
		if r.Topic == "" {
			errs = append(errs, fmt.Errorf("ratings[%d].topic is required", i))
			continue
		}
		if seen[r.Topic] {
			errs = append(errs, fmt.Errorf("ratings[%d]: duplicate topic %q", i, r.Topic))
		}
		seen[r.Topic] = true
		if !domain.ValidRatings[r.Rating] {
			errs = append(errs, fmt.Errorf("ratings[%d]: invalid rating %d for topic %q", i, r.Rating, r.Topic))
		}
	}
	return errs
}

func validateCommitments(commitments []CommitmentImport) []error {
	var errs []error
	for i, c := range commitments {
		if len(c.Days) == 0 {
			errs = append(errs, fmt.Errorf("commitments[%d].days is required", i))
		}
		for _, d := range c.Days {
			if !validDayNames[d] {
				errs = append(errs, fmt.Errorf("commitments[%d]: unknown weekday %q", i, d))
			}
		}
		errs = append(errs, checkClock(fmt.Sprintf("commitments[%d].start", i), c.Start, true)...)
		errs = append(errs, checkClock(fmt.Sprintf("commitments[%d].end", i), c.End, true)...)
		errs = append(errs, checkDate(fmt.Sprintf("commitments[%d].start_date", i), c.StartDate)...)
		errs = append(errs, checkDate(fmt.Sprintf("commitments[%d].end_date", i), c.EndDate)...)
	}
	return errs
}

func validateBlocked(blocked []BlockedImport) []error {
	var errs []error
	for i, b := range blocked {
		start, err1 := time.Parse("2006-01-02 15:04", b.Start)
		if err1 != nil {
			errs = append(errs, fmt.Errorf("blocked[%d].start: invalid timestamp %q (expected \"YYYY-MM-DD HH:MM\")", i, b.Start))
		}
		end, err2 := time.Parse("2006-01-02 15:04", b.End)
		if err2 != nil {
			errs = append(errs, fmt.Errorf("blocked[%d].end: invalid timestamp %q (expected \"YYYY-MM-DD HH:MM\")", i, b.End))
		}
		if err1 == nil && err2 == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("blocked[%d]: end must be after start", i))
		}
	}
	return errs
}

func checkClock(field, value string, required bool) []error {
	if value == "" {
		if required {
			return []error{fmt.Errorf("%s is required", field)}
		}
		return nil
	}
	if _, err := domain.ParseClock(value); err != nil {
		return []error{fmt.Errorf("%s: %v", field, err)}
	}
	return nil
}

func checkDate(field, value string) []error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return nil
}
