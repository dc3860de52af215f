package memory

import (
	"context"
	"fmt"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
)

type exerciseRepository struct {
	store *Store
}

func NewExerciseRepository(store *Store) repository.ExerciseRepository {
	return &exerciseRepository{store: store}
}

func (r *exerciseRepository) Append(_ context.Context, exercise *domain.Exercise) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[exercise.UserID]; !ok {
		return fmt.Errorf("failed to append exercise: %w: %s", domain.ErrUserNotFound, exercise.UserID)
	}

	r.store.exercises[exercise.UserID] = append(r.store.exercises[exercise.UserID], cloneExercise(exercise))
	return nil
}

func (r *exerciseRepository) ListByUser(_ context.Context, userID string) ([]*domain.Exercise, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored := r.store.exercises[userID]
	exercises := make([]*domain.Exercise, len(stored))
	for i, e := range stored {
		exercises[i] = cloneExercise(e)
	}
	return exercises, nil
}
