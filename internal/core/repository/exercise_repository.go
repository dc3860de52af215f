package repository

import (
	"context"

	"github.com/martijn/exerlog/internal/core/domain"
)

type ExerciseRepository interface {
	Append(ctx context.Context, exercise *domain.Exercise) error
	// ListByUser returns the user's entries in insertion order, or an empty
	// slice when there are none.
	ListByUser(ctx context.Context, userID string) ([]*domain.Exercise, error)
}
