package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptyField        = errors.New("name and comment must not be empty")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Comments interface {
		Create(context.Context, string, string) (*Comment, error)
		GetAll(context.Context) ([]Comment, error)
	}
	Ratings interface {
		Create(context.Context, int) (*Rating, error)
		GetAllWithStats(context.Context) (*RatingStats, error)
	}
	ContactMessages interface {
		Create(context.Context, *ContactMessage) error
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Comments:        &CommentStore{db},
		Ratings:         &RatingStore{db},
		ContactMessages: &ContactMessageStore{db},
	}
}
