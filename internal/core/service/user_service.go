package service

import (
	"context"
	"fmt"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/sirupsen/logrus"
)

// IDGenerator mints user ids.
type IDGenerator func() string

type UserService struct {
	userRepo repository.UserRepository
	newID    IDGenerator
	log      logrus.FieldLogger
}

// NewUserService creates the user registry. A nil newID uses domain.NewUserID.
func NewUserService(userRepo repository.UserRepository, newID IDGenerator, log logrus.FieldLogger) *UserService {
	if newID == nil {
		newID = domain.NewUserID
	}
	return &UserService{
		userRepo: userRepo,
		newID:    newID,
		log:      log,
	}
}

// Register returns the user with this username, creating it on first use.
func (s *UserService) Register(ctx context.Context, username string) (*domain.User, error) {
	user, created, err := s.userRepo.CreateIfAbsent(ctx, domain.NewUser(s.newID(), username))
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if created {
		s.log.WithField("user_id", user.ID).Infof("registered user %q", user.Username)
	} else {
		s.log.WithField("user_id", user.ID).Debugf("user %q already exists", user.Username)
	}

	return user, nil
}

// ListUsers returns all users in registration order
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns an error wrapping domain.ErrUserNotFound for unknown ids
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) UsernameOf(ctx context.Context, id string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
