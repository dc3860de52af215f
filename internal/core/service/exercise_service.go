package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/martijn/exerlog/internal/core/domain"
	"github.com/martijn/exerlog/internal/core/repository"
	"github.com/sirupsen/logrus"
)

// ExerciseInput holds the raw form values of an exercise submission.
type ExerciseInput struct {
	Description string
	Duration    string
	Date        string
}

// LogParams holds the raw query values of a log request. Empty means absent.
type LogParams struct {
	From  string
	To    string
	Limit string
}

// ExerciseLog is a user's filtered log.
type ExerciseLog struct {
	User    *domain.User
	Entries []*domain.Exercise
}

type ExerciseService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
	log          logrus.FieldLogger
}

func NewExerciseService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	log logrus.FieldLogger,
) *ExerciseService {
	return &ExerciseService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
		log:          log,
	}
}

// WithClock replaces the clock used for missing or invalid dates.
func (s *ExerciseService) WithClock(now func() time.Time) *ExerciseService {
	s.now = now
	return s
}

// AddExercise appends an entry to the user's log and returns the owner with
// the stored entry.
func (s *ExerciseService) AddExercise(ctx context.Context, userID string, in ExerciseInput) (*domain.User, *domain.Exercise, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	duration, err := ParseDuration(in.Duration)
	if err != nil {
		return nil, nil, err
	}

	date := s.normalize("date", in.Date)
	exercise := domain.NewExercise(user.ID, in.Description, duration, date)

	if err := s.exerciseRepo.Append(ctx, exercise); err != nil {
		return nil, nil, fmt.Errorf("failed to add exercise: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"date":     date.String(),
		"duration": duration,
	}).Info("exercise added")

	return user, exercise, nil
}

// GetLog returns the user's entries narrowed by params.
func (s *ExerciseService) GetLog(ctx context.Context, userID string, params LogParams) (*ExerciseLog, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	query, err := s.ParseLogQuery(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.exerciseRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return &ExerciseLog{
		User:    user,
		Entries: query.Apply(entries),
	}, nil
}

// ParseLogQuery converts raw from/to/limit values. Dates go through the same
// normalization as submitted exercise dates.
func (s *ExerciseService) ParseLogQuery(params LogParams) (domain.LogQuery, error) {
	var query domain.LogQuery

	if strings.TrimSpace(params.From) != "" {
		from := s.normalize("from", params.From)
		query.From = &from
	}

	if strings.TrimSpace(params.To) != "" {
		to := s.normalize("to", params.To)
		query.To = &to
	}

	if raw := strings.TrimSpace(params.Limit); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return query, NewValidationError("limit", "limit must be a non-negative integer, got %q", params.Limit)
		}
		query.Limit = &limit
	}

	return query, nil
}

func (s *ExerciseService) normalize(field, raw string) domain.Date {
	date, parsed := domain.NormalizeDate(raw, s.now())
	if !parsed && strings.TrimSpace(raw) != "" {
		s.log.WithField(field, raw).Debugf("unparseable date, using %s", date)
	}
	return date
}

// ParseDuration parses a duration in whole minutes
func ParseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, NewValidationError("duration", "duration is required")
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0, NewValidationError("duration", "duration must be a non-negative integer, got %q", raw)
	}

	return minutes, nil
}
