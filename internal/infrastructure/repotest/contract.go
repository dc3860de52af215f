// Package repotest holds the behaviour every storage backend must share.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns fresh, empty repositories backed by the same store.
type Factory func(t *testing.T) (repository.UserRepository, repository.ExerciseRepository)

// Run exercises users and exercise logs against one backend.
func Run(t *testing.T, newRepos Factory) {
	t.Run("create if absent is idempotent per username", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		first, created, err := users.CreateIfAbsent(ctx, domain.NewUser("id-1", "fcc_test"))
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "id-1", first.ID)

		again, created, err := users.CreateIfAbsent(ctx, domain.NewUser("id-2", "fcc_test"))
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "id-1", again.ID)
		assert.Equal(t, "fcc_test", again.Username)

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("list keeps registration order", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		empty, err := users.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)

		// ids sort opposite to registration order
		for i, name := range []string{"zoe", "adam", "mia"} {
			_, _, err := users.CreateIfAbsent(ctx, domain.NewUser(fmt.Sprintf("id-%d", 9-i), name))
			require.NoError(t, err)
		}

		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "zoe", all[0].Username)
		assert.Equal(t, "adam", all[1].Username)
		assert.Equal(t, "mia", all[2].Username)
	})

	t.Run("find unknown ids", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		_, err := users.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = users.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, _, err = users.CreateIfAbsent(ctx, domain.NewUser("id-1", "alice"))
		require.NoError(t, err)

		found, err := users.FindByID(ctx, "id-1")
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Username)

		found, err = users.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "id-1", found.ID)
	})

	t.Run("exercises keep insertion order per user", func(t *testing.T) {
		users, exercises := newRepos(t)
		ctx := context.Background()

		for _, id := range []string{"u1", "u2"} {
			_, _, err := users.CreateIfAbsent(ctx, domain.NewUser(id, "name-"+id))
			require.NoError(t, err)
		}

		none, err := exercises.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		entries := []*domain.Exercise{
			domain.NewExercise("u1", "run", 30, domain.NewDate(2023, time.March, 3)),
			domain.NewExercise("u2", "swim", 20, domain.NewDate(2023, time.March, 1)),
			domain.NewExercise("u1", "bike", 60, domain.NewDate(2023, time.January, 1)),
			domain.NewExercise("u1", "walk", 0, domain.NewDate(2023, time.February, 2)),
		}
		for _, e := range entries {
			require.NoError(t, exercises.Append(ctx, e))
		}

		got, err := exercises.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "run", got[0].Description)
		assert.Equal(t, "bike", got[1].Description)
		assert.Equal(t, "walk", got[2].Description)
		assert.Equal(t, 60, got[1].Duration)
		assert.Equal(t, "2023-01-01", got[1].Date.String())
		assert.Equal(t, "u1", got[1].UserID)

		other, err := exercises.ListByUser(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, other, 1)
		assert.Equal(t, "swim", other[0].Description)
	})

	t.Run("returned entries do not alias the store", func(t *testing.T) {
		users, exercises := newRepos(t)
		ctx := context.Background()

		_, _, err := users.CreateIfAbsent(ctx, domain.NewUser("u1", "alice"))
		require.NoError(t, err)
		require.NoError(t, exercises.Append(ctx, domain.NewExercise("u1", "run", 30, domain.NewDate(2023, time.March, 3))))

		got, err := exercises.ListByUser(ctx, "u1")
		require.NoError(t, err)
		got[0].Description = "changed"

		again, err := exercises.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "run", again[0].Description)
	})

	t.Run("concurrent registration creates one user", func(t *testing.T) {
		users, _ := newRepos(t)
		ctx := context.Background()

		const workers = 16
		ids := make([]string, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				u, _, err := users.CreateIfAbsent(ctx, domain.NewUser(fmt.Sprintf("id-%02d", i), "same"))
				if assert.NoError(t, err) {
					ids[i] = u.ID
				}
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, ids[0], id)
		}

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
