package memory

import (
	"context"
	"fmt"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) CreateIfAbsent(_ context.Context, user *domain.User) (*domain.User, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if id, ok := r.store.byUsername[user.Username]; ok {
		return cloneUser(r.store.users[id]), false, nil
	}
	if _, ok := r.store.users[user.ID]; ok {
		return nil, false, fmt.Errorf("failed to create user: duplicate id %s", user.ID)
	}

	stored := cloneUser(user)
	r.store.users[stored.ID] = stored
	r.store.byUsername[stored.Username] = stored.ID
	r.store.order = append(r.store.order, stored.ID)

	return cloneUser(stored), true, nil
}

func (r *userRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, id)
	}
	return cloneUser(user), nil
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("%w: username %s", domain.ErrUserNotFound, username)
	}
	return cloneUser(r.store.users[id]), nil
}

func (r *userRepository) List(_ context.Context) ([]*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.store.order))
	for _, id := range r.store.order {
		users = append(users, cloneUser(r.store.users[id]))
	}
	return users, nil
}
