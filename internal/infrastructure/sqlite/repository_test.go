package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/martijn/exerlog/internal/infrastructure/repotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, path string) *DB {
	t.Helper()

	db, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepositories(t *testing.T) {
	repotest.Run(t, func(t *testing.T) (repository.UserRepository, repository.ExerciseRepository) {
		db := newTestDB(t, MemoryPath)
		return NewUserRepository(db), NewExerciseRepository(db)
	})
}

func TestAppendRequiresUser(t *testing.T) {
	db := newTestDB(t, MemoryPath)
	exercises := NewExerciseRepository(db)

	err := exercises.Append(context.Background(), domain.NewExercise("ghost", "run", 10, domain.NewDate(2023, time.January, 1)))
	assert.Error(t, err)
}

func TestFileDatabaseSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exerlog.sqlite3")
	ctx := context.Background()

	db, err := New(path)
	require.NoError(t, err)

	_, _, err = NewUserRepository(db).CreateIfAbsent(ctx, domain.NewUser("u1", "alice"))
	require.NoError(t, err)
	require.NoError(t, NewExerciseRepository(db).Append(ctx, domain.NewExercise("u1", "run", 25, domain.NewDate(2023, time.May, 17))))
	require.NoError(t, db.Close())

	reopened := newTestDB(t, path)

	user, err := NewUserRepository(reopened).FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	entries, err := NewExerciseRepository(reopened).ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Wed May 17 2023", entries[0].Date.Display())
	assert.Equal(t, 25, entries[0].Duration)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{MemoryPath, ":memory:?" + pragmas},
		{"/var/lib/exerlog.db", "/var/lib/exerlog.db?" + pragmas},
		{"file:exerlog.db?mode=rwc", "file:exerlog.db?mode=rwc&" + pragmas},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := dsn(tt.path)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, 1, strings.Count(got, "?"))
		})
	}
}
