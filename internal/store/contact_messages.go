package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"timestamp"`
}

type ContactMessageStore struct {
	db *pgxpool.Pool
}

// Create persists a contact message and fills in its id and timestamp.
func (s *ContactMessageStore) Create(ctx context.Context, m *ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return ErrEmptyField
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	m.ID = uuid.NewString()

	query := `
        INSERT INTO contact_messages (id, name, email, message)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at
    `
	if err := s.db.QueryRow(ctx, query, m.ID, m.Name, m.Email, m.Message).Scan(&m.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}
