package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
	"github.com/google/uuid"
)

// SQLiteBlockedRepo implements BlockedRepo for one-off blocked intervals.
type SQLiteBlockedRepo struct {
	db db.DBTX
}

// NewSQLiteBlockedRepo creates a new SQLiteBlockedRepo.
func NewSQLiteBlockedRepo(conn db.DBTX) *SQLiteBlockedRepo {
	return &SQLiteBlockedRepo{db: conn}
}

func (r *SQLiteBlockedRepo) Create(ctx context.Context, userID string, b *domain.BlockedInterval) error {
	if b.EventID == "" {
		b.EventID = uuid.New().String()
	}
	query := `INSERT INTO blocked_times (id, user_id, start_at, end_at, label) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.EventID,
		userID,
		b.Start.UTC().Format(time.RFC3339),
		b.End.UTC().Format(time.RFC3339),
		b.Label,
	)
	if err != nil {
		return fmt.Errorf("inserting blocked time: %w", err)
	}
	return nil
}

func (r *SQLiteBlockedRepo) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.BlockedInterval, error) {
	query := `SELECT id, start_at, end_at, label FROM blocked_times
		WHERE user_id = ? AND end_at > ? AND start_at < ?
		ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query,
		userID,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing blocked times: %w", err)
	}
	defer rows.Close()

	var blocks []domain.BlockedInterval
	for rows.Next() {
		var b domain.BlockedInterval
		var startStr, endStr string
		if err := rows.Scan(&b.EventID, &startStr, &endStr, &b.Label); err != nil {
			return nil, fmt.Errorf("scanning blocked time: %w", err)
		}
		b.Start, _ = time.Parse(time.RFC3339, startStr)
		b.End, _ = time.Parse(time.RFC3339, endStr)
		b.Source = domain.BlockOneOff
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blocked times: %w", err)
	}
	return blocks, nil
}

func (r *SQLiteBlockedRepo) Delete(ctx context.Context, eventID string) error {
	query := `DELETE FROM blocked_times WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, eventID); err != nil {
		return fmt.Errorf("deleting blocked time: %w", err)
	}
	return nil
}

// SQLiteCommitmentRepo implements CommitmentRepo for recurring commitments.
type SQLiteCommitmentRepo struct {
	db db.DBTX
}

// NewSQLiteCommitmentRepo creates a new SQLiteCommitmentRepo.
func NewSQLiteCommitmentRepo(conn db.DBTX) *SQLiteCommitmentRepo {
	return &SQLiteCommitmentRepo{db: conn}
}

func (r *SQLiteCommitmentRepo) Create(ctx context.Context, c *domain.Commitment) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	var endDate interface{}
	if !c.EndDate.IsZero() {
		endDate = c.EndDate.UTC().Format(dateLayout)
	}
	query := `INSERT INTO commitments (id, user_id, label, start_date, end_date,
		weekday_mask, day_start_min, day_end_min) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.UserID,
		c.Label,
		c.StartDate.UTC().Format(dateLayout),
		endDate,
		int(c.Weekdays),
		c.DayStartMin,
		c.DayEndMin,
	)
	if err != nil {
		return fmt.Errorf("inserting commitment: %w", err)
	}
	return nil
}

func (r *SQLiteCommitmentRepo) ListByUser(ctx context.Context, userID string) ([]domain.Commitment, error) {
	query := `SELECT id, user_id, label, start_date, end_date, weekday_mask,
		day_start_min, day_end_min FROM commitments WHERE user_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing commitments: %w", err)
	}
	defer rows.Close()

	var commitments []domain.Commitment
	for rows.Next() {
		var c domain.Commitment
		var startStr string
		var endStr sql.NullString
		var mask int
		if err := rows.Scan(&c.ID, &c.UserID, &c.Label, &startStr, &endStr, &mask, &c.DayStartMin, &c.DayEndMin); err != nil {
			return nil, fmt.Errorf("scanning commitment: %w", err)
		}
		c.StartDate, _ = time.Parse(dateLayout, startStr)
		if end := parseNullableTime(endStr, dateLayout); end != nil {
			c.EndDate = *end
		}
		c.Weekdays = domain.WeekdayMask(mask)
		commitments = append(commitments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating commitments: %w", err)
	}
	return commitments, nil
}

func (r *SQLiteCommitmentRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM commitments WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting commitment: %w", err)
	}
	return nil
}
