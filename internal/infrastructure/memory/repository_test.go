package memory

import (
	"context"
	"testing"
	"time"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/martijn/exerlog/internal/infrastructure/repotest"
	"github.com/stretchr/testify/assert"
)

func TestRepositories(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (repository.UserRepository, repository.ExerciseRepository) {
		store := NewStore()
		return NewUserRepository(store), NewExerciseRepository(store)
	})
}

func TestAppendRequiresUser(t *testing.T) {
	store := NewStore()
	exercises := NewExerciseRepository(store)

	err := exercises.Append(context.Background(), domain.NewExercise("ghost", "run", 10, domain.NewDate(2023, time.January, 1)))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
