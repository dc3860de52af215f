package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *Date {
	d := NewDate(year, month, day)
	return &d
}

func intPtr(n int) *int {
	return &n
}

func seedLog() []*Exercise {
	// Deliberately out of date order: the log keeps insertion order
	return []*Exercise{
		NewExercise("u1", "run", 30, NewDate(2023, time.January, 10)),
		NewExercise("u1", "swim", 45, NewDate(2023, time.January, 1)),
		NewExercise("u1", "bike", 60, NewDate(2023, time.January, 20)),
		NewExercise("u1", "walk", 15, NewDate(2023, time.January, 5)),
		NewExercise("u1", "lift", 40, NewDate(2023, time.January, 31)),
	}
}

func descriptions(entries []*Exercise) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Description
	}
	return out
}

func TestLogQueryApply(t *testing.T) {
	tests := []struct {
		name     string
		query    LogQuery
		expected []string
	}{
		{
			name:     "no filters keeps insertion order",
			query:    LogQuery{},
			expected: []string{"run", "swim", "bike", "walk", "lift"},
		},
		{
			name:     "from is inclusive",
			query:    LogQuery{From: datePtr(2023, time.January, 10)},
			expected: []string{"run", "bike", "lift"},
		},
		{
			name:     "to is inclusive",
			query:    LogQuery{To: datePtr(2023, time.January, 10)},
			expected: []string{"run", "swim", "walk"},
		},
		{
			name:     "from and to",
			query:    LogQuery{From: datePtr(2023, time.January, 5), To: datePtr(2023, time.January, 20)},
			expected: []string{"run", "bike", "walk"},
		},
		{
			name:     "single day range",
			query:    LogQuery{From: datePtr(2023, time.January, 1), To: datePtr(2023, time.January, 1)},
			expected: []string{"swim"},
		},
		{
			name:     "inverted range is empty",
			query:    LogQuery{From: datePtr(2023, time.January, 20), To: datePtr(2023, time.January, 5)},
			expected: []string{},
		},
		{
			name:     "limit applies after filtering",
			query:    LogQuery{From: datePtr(2023, time.January, 5), Limit: intPtr(2)},
			expected: []string{"run", "bike"},
		},
		{
			name:     "limit larger than result",
			query:    LogQuery{Limit: intPtr(50)},
			expected: []string{"run", "swim", "bike", "walk", "lift"},
		},
		{
			name:     "zero limit",
			query:    LogQuery{Limit: intPtr(0)},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.query.Apply(seedLog())
			assert.Equal(t, tt.expected, descriptions(got))

			if tt.query.Limit != nil {
				assert.LessOrEqual(t, len(got), *tt.query.Limit)
			}
			for _, e := range got {
				if tt.query.From != nil {
					assert.False(t, e.Date.Before(*tt.query.From))
				}
				if tt.query.To != nil {
					assert.False(t, e.Date.After(*tt.query.To))
				}
			}
		})
	}
}

func TestLogQueryApplyDoesNotMutateInput(t *testing.T) {
	entries := seedLog()
	before := descriptions(entries)

	LogQuery{From: datePtr(2023, time.January, 15), Limit: intPtr(1)}.Apply(entries)

	assert.Equal(t, before, descriptions(entries))
}

func TestNewUserID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewUserID()
		assert.Len(t, id, 32)
		assert.Regexp(t, "^[0-9a-f]{32}$", id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
