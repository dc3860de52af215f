package repository

import (
	"context"

	"github.com/martijn/exerlog/internal/core/domain"
)

type UserRepository interface {
	// CreateIfAbsent stores user unless one with the same username exists.
	// It returns the stored user and whether it was created by this call.
	CreateIfAbsent(ctx context.Context, user *domain.User) (*domain.User, bool, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns users in registration order.
	List(ctx context.Context) ([]*domain.User, error)
}
