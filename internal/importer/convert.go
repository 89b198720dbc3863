package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/revisio/internal/domain"
)

// ImportBundle holds the fully converted domain objects from one import
// file, ready for persistence in a single transaction.
type ImportBundle struct {
	User        *domain.User
	Preferences *domain.TimePreferences
	Ratings     []domain.TopicRating
	Commitments []*domain.Commitment
	Blocked     []*domain.BlockedInterval
}

var dayNameToWeekday = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday,
	"wed": time.Wednesday, "thu": time.Thursday, "fri": time.Friday,
	"sat": time.Saturday,
}

// ConvertToDomain transforms a validated import schema into domain objects.
// The schema must have passed ValidateImportSchema; parse errors here would
// indicate a bug in validation.
func ConvertToDomain(schema *ImportSchema, now time.Time) (*ImportBundle, error) {
	userID := uuid.New().String()
	bundle := &ImportBundle{
		User: &domain.User{
			ID:        userID,
			Name:      schema.User.Name,
			Active:    true,
			CreatedAt: now,
		},
	}

	if p := schema.Preferences; p != nil {
		prefs, err := convertPreferences(userID, p)
		if err != nil {
			return nil, err
		}
		bundle.Preferences = prefs
	}

	for _, r := range schema.Ratings {
		bundle.Ratings = append(bundle.Ratings, domain.TopicRating{
			UserID:    userID,
			TopicID:   r.Topic,
			Rating:    r.Rating,
			UpdatedAt: now,
		})
	}

	for _, c := range schema.Commitments {
		commitment, err := convertCommitment(userID, c)
		if err != nil {
			return nil, err
		}
		bundle.Commitments = append(bundle.Commitments, commitment)
	}

	for _, b := range schema.Blocked {
		start, err := time.Parse("2006-01-02 15:04", b.Start)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse("2006-01-02 15:04", b.End)
		if err != nil {
			return nil, err
		}
		bundle.Blocked = append(bundle.Blocked, &domain.BlockedInterval{
			Start:  start.UTC(),
			End:    end.UTC(),
			Source: domain.BlockOneOff,
			Label:  b.Label,
		})
	}

	return bundle, nil
}

func convertPreferences(userID string, p *PreferencesImport) (*domain.TimePreferences, error) {
	prefs := &domain.TimePreferences{
		UserID:          userID,
		UseWeekdayTimes: p.SameTimes,
		SessionMinutes:  domain.DefaultSessionMinutes,
		SlotReservePct:  domain.DefaultSlotReservePct,
	}
	var err error
	if prefs.WeekdayStartMin, err = domain.ParseClock(p.WeekdayStart); err != nil {
		return nil, err
	}
	if prefs.WeekdayEndMin, err = domain.ParseClock(p.WeekdayEnd); err != nil {
		return nil, err
	}
	if !p.SameTimes {
		if prefs.WeekendStartMin, err = domain.ParseClock(p.WeekendStart); err != nil {
			return nil, err
		}
		if prefs.WeekendEndMin, err = domain.ParseClock(p.WeekendEnd); err != nil {
			return nil, err
		}
	}
	if p.SessionMinutes != nil {
		prefs.SessionMinutes = *p.SessionMinutes
	}
	if p.SlotReservePct != nil {
		prefs.SlotReservePct = *p.SlotReservePct
	}
	return prefs, nil
}

func convertCommitment(userID string, c CommitmentImport) (*domain.Commitment, error) {
	var mask domain.WeekdayMask
	for _, d := range c.Days {
		mask = mask.With(dayNameToWeekday[d])
	}

	commitment := &domain.Commitment{
		ID:       uuid.New().String(),
		UserID:   userID,
		Label:    c.Label,
		Weekdays: mask,
	}
	var err error
	if commitment.DayStartMin, err = domain.ParseClock(c.Start); err != nil {
		return nil, err
	}
	if commitment.DayEndMin, err = domain.ParseClock(c.End); err != nil {
		return nil, err
	}
	if c.StartDate != "" {
		if commitment.StartDate, err = time.Parse("2006-01-02", c.StartDate); err != nil {
			return nil, err
		}
	}
	if c.EndDate != "" {
		if commitment.EndDate, err = time.Parse("2006-01-02", c.EndDate); err != nil {
			return nil, err
		}
	}
	return commitment, nil
}
