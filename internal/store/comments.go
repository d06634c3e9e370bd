package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Comment represents a visitor note on the comment wall. Records are
// insert-only: nothing in the system ever updates or deletes one.
type Comment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"timestamp"`
}

// CommentStore handles database operations for the comment wall.
type CommentStore struct {
	db *pgxpool.Pool
}

// Create persists a new comment and returns it with its assigned id and
// timestamp. Empty or whitespace-only fields are rejected before any
// database access; the handler validates too, this is the defensive check.
func (s *CommentStore) Create(ctx context.Context, name, text string) (*Comment, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		return nil, ErrEmptyField
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	c := &Comment{
		ID:      uuid.NewString(),
		Name:    name,
		Comment: text,
	}

	query := `
        INSERT INTO comments (id, name, comment)
        VALUES ($1, $2, $3)
        RETURNING created_at
    `
	if err := s.db.QueryRow(ctx, query, c.ID, c.Name, c.Comment).Scan(&c.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return c, nil
}

// GetAll retrieves every comment. No explicit sort is applied; the wall
// accepts store-defined order.
func (s *CommentStore) GetAll(ctx context.Context) ([]Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `
        SELECT id, name, comment, created_at
        FROM comments
    `
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Comment, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
