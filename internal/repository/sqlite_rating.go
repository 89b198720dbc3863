package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/revisio/internal/db"
	"github.com/alexanderramin/revisio/internal/domain"
)

// SQLiteRatingRepo implements RatingRepo using a SQLite database.
type SQLiteRatingRepo struct {
	db db.DBTX
}

// NewSQLiteRatingRepo creates a new SQLiteRatingRepo.
func NewSQLiteRatingRepo(conn db.DBTX) *SQLiteRatingRepo {
	return &SQLiteRatingRepo{db: conn}
}

func (r *SQLiteRatingRepo) Upsert(ctx context.Context, rating *domain.TopicRating) error {
	query := `INSERT INTO topic_ratings (user_id, topic_id, rating, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, topic_id) DO UPDATE SET rating = excluded.rating, updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		rating.UserID,
		rating.TopicID,
		rating.Rating,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting topic rating: %w", err)
	}
	return nil
}

func (r *SQLiteRatingRepo) ListByUser(ctx context.Context, userID string) ([]domain.TopicRating, error) {
	query := `SELECT user_id, topic_id, rating, updated_at
		FROM topic_ratings WHERE user_id = ? ORDER BY topic_id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing topic ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.TopicRating
	for rows.Next() {
		var tr domain.TopicRating
		var updatedAtStr string
		if err := rows.Scan(&tr.UserID, &tr.TopicID, &tr.Rating, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning topic rating: %w", err)
		}
		tr.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		ratings = append(ratings, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating topic ratings: %w", err)
	}
	return ratings, nil
}
