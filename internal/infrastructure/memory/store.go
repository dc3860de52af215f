// Package memory keeps users and exercise logs in process memory. A restart
// clears everything.
package memory

import (
	"sync"

	"github.com/martijn/exerlog/internal/core/domain"
)

// Store owns all state shared by the memory repositories. Writers hold the
// lock exclusively so a read never observes a half-applied mutation.
type Store struct {
	mu sync.RWMutex

	users      map[string]*domain.User // by id
	byUsername map[string]string       // username -> id
	order      []string                // ids in registration order
	exercises  map[string][]*domain.Exercise
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]*domain.User),
		byUsername: make(map[string]string),
		exercises:  make(map[string][]*domain.Exercise),
	}
}

// copies are handed out so callers cannot reach stored records
func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneExercise(e *domain.Exercise) *domain.Exercise {
	c := *e
	return &c
}
