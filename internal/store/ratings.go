package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Rating is a single star vote. The timestamp comes from the database
// clock so visitor clock skew never leaks into the record.
type Rating struct {
	ID        string    `json:"id"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"timestamp"`
}

// RatingStats is the derived view the widget renders: every vote plus the
// mean and count computed from them at read time.
type RatingStats struct {
	Ratings       []Rating `json:"ratings"`
	AverageRating float64  `json:"average_rating"`
	TotalVotes    int      `json:"total_votes"`
}

// RatingStore handles database operations for star votes.
type RatingStore struct {
	db *pgxpool.Pool
}

// Create persists a new vote. Out-of-range values fail before any database
// access is attempted.
func (s *RatingStore) Create(ctx context.Context, value int) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rating := &Rating{
		ID:    uuid.NewString(),
		Value: value,
	}

	query := `
        INSERT INTO ratings (id, rating)
        VALUES ($1, $2)
        RETURNING created_at
    `
	if err := s.db.QueryRow(ctx, query, rating.ID, rating.Value).Scan(&rating.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert rating: %w", err)
	}
	return rating, nil
}

// GetAllWithStats scans the full ratings collection and derives the
// aggregate from it. There is no running counter to keep in sync: the
// average is recomputed from whatever the scan returns, every call.
func (s *RatingStore) GetAllWithStats(ctx context.Context) (*RatingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, rating, created_at
        FROM ratings
    `
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ratings: %w", err)
	}
	defer rows.Close()

	ratings := []Rating{}
	sum := 0
	for rows.Next() {
		var r Rating
		if err := rows.Scan(&r.ID, &r.Value, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		sum += r.Value
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats := &RatingStats{
		Ratings:    ratings,
		TotalVotes: len(ratings),
	}
	if stats.TotalVotes > 0 {
		average := float64(sum) / float64(stats.TotalVotes)
		stats.AverageRating = math.Round(average*10) / 10
	}
	return stats, nil
}
