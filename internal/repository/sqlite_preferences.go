package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
)

// SQLitePreferencesRepo implements PreferencesRepo using a SQLite database.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

// NewSQLitePreferencesRepo creates a new SQLitePreferencesRepo.
func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context, userID string) (*domain.TimePreferences, error) {
	query := `SELECT user_id, weekday_start_min, weekday_end_min, weekend_start_min,
		weekend_end_min, use_weekday_times, session_minutes, slot_reserve_pct
		FROM time_preferences WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.TimePreferences
	var useWeekday int
	err := row.Scan(
		&p.UserID,
		&p.WeekdayStartMin,
		&p.WeekdayEndMin,
		&p.WeekendStartMin,
		&p.WeekendEndMin,
		&useWeekday,
		&p.SessionMinutes,
		&p.SlotReservePct,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time preferences: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning time preferences: %w", err)
	}
	p.UseWeekdayTimes = intToBool(useWeekday)
	return &p, nil
}

func (r *SQLitePreferencesRepo) Upsert(ctx context.Context, p *domain.TimePreferences) error {
	query := `INSERT OR REPLACE INTO time_preferences (user_id, weekday_start_min,
		weekday_end_min, weekend_start_min, weekend_end_min, use_weekday_times,
		session_minutes, slot_reserve_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.WeekdayStartMin,
		p.WeekdayEndMin,
		p.WeekendStartMin,
		p.WeekendEndMin,
		boolToInt(p.UseWeekdayTimes),
		p.SessionMinutes,
		p.SlotReservePct,
	)
	if err != nil {
		return fmt.Errorf("upserting time preferences: %w", err)
	}
	return nil
}
