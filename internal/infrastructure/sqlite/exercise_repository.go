package sqlite

import (
	"context"
	"fmt"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
)

type exerciseRepository struct {
	db *DB
}

func NewExerciseRepository(db *DB) repository.ExerciseRepository {
	return &exerciseRepository{db: db}
}

func (r *exerciseRepository) Append(ctx context.Context, exercise *domain.Exercise) error {
	query := `
		INSERT INTO exercise (user_id, description, duration, date, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		exercise.UserID,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append exercise: %w", err)
	}
	return nil
}

func (r *exerciseRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Exercise, error) {
	query := `
		SELECT user_id, description, duration, date, created_at
		FROM exercise
		WHERE user_id = ?
		ORDER BY seq
	`
	exercises := []*domain.Exercise{}
	err := r.db.SelectContext(ctx, &exercises, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}
