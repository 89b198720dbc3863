package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, user_id, topic_id, scheduled_at, duration_min, status, rationale, created_at, updated_at`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	rationale, err := s.Rationale.Encode()
	if err != nil {
		return fmt.Errorf("encoding session rationale: %w", err)
	}
	query := `INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.TopicID,
		s.ScheduledAt.UTC().Format(time.RFC3339),
		s.DurationMin,
		string(s.Status),
		rationale,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.StudySession) error {
	rationale, err := s.Rationale.Encode()
	if err != nil {
		return fmt.Errorf("encoding session rationale: %w", err)
	}
	query := `UPDATE study_sessions
		SET scheduled_at = ?, duration_min = ?, status = ?, rationale = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.ScheduledAt.UTC().Format(time.RFC3339),
		s.DurationMin,
		string(s.Status),
		rationale,
		nowUTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating study session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("study session %s: %w", s.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE user_id = ? ORDER BY scheduled_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by user: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE user_id = ? AND scheduled_at >= ? AND scheduled_at < ?
		ORDER BY scheduled_at, id`
	rows, err := r.db.QueryContext(ctx, query,
		userID,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions in range: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByUserTopic(ctx context.Context, userID, topicID string) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE user_id = ? AND topic_id = ? ORDER BY scheduled_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by topic: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// DeleteRange removes every session in [from, to) for the user. Combined
// with Create calls inside one transaction it implements the full-replace
// semantics of weekly regeneration.
func (r *SQLiteSessionRepo) DeleteRange(ctx context.Context, userID string, from, to time.Time) error {
	query := `DELETE FROM study_sessions
		WHERE user_id = ? AND scheduled_at >= ? AND scheduled_at < ?`
	_, err := r.db.ExecContext(ctx, query,
		userID,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("deleting session range: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.StudySession, error) {
	var s domain.StudySession
	var scheduledStr, createdStr, updatedStr, rationaleStr, status string

	err := row.Scan(
		&s.ID, &s.UserID, &s.TopicID, &scheduledStr, &s.DurationMin,
		&status, &rationaleStr, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}
	populateSession(&s, status, scheduledStr, createdStr, updatedStr, rationaleStr)
	return &s, nil
}

func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var scheduledStr, createdStr, updatedStr, rationaleStr, status string
		err := rows.Scan(
			&s.ID, &s.UserID, &s.TopicID, &scheduledStr, &s.DurationMin,
			&status, &rationaleStr, &createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning study session: %w", err)
		}
		populateSession(&s, status, scheduledStr, createdStr, updatedStr, rationaleStr)
		sessions = append(sessions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills derived fields. A rationale that fails to parse is
// left as the zero value (FormatVersion 0) rather than failing the read;
// sequence reconstruction skips such rows.
func populateSession(s *domain.StudySession, status, scheduledStr, createdStr, updatedStr, rationaleStr string) {
	s.Status = domain.SessionStatus(status)
	s.ScheduledAt, _ = time.Parse(time.RFC3339, scheduledStr)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	if r, err := domain.ParseRationale(rationaleStr); err == nil {
		s.Rationale = r
	}
}
