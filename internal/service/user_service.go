package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsroom-platform-api/internal/auth"
	"github.com/newsroom-platform-api/internal/models"
	"github.com/newsroom-platform-api/internal/repository"
	"github.com/newsroom-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

// userService is the concrete implementation of UserService
type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

// newUserService creates a new UserService
func newUserService(repo repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With().Str("service", "user").Logger(),
	}
}

// Register creates a user with a fixed role. The role is exclusive and
// immutable after registration.
func (s *userService) Register(ctx context.Context, username, email string, role models.Role) (*models.User, error) {
	now := time.Now()
	user := &models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := newValidationError(validation.ValidateNewUser(user)); err != nil {
		return nil, err
	}

	if taken, err := s.repo.UsernameExists(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrConflict
	}
	if taken, err := s.repo.EmailExists(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrConflict
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Role reconciliation: a journalist holds no subscription sets.
	// New rows have none, but re-registrations after data imports can.
	if role == models.RoleJournalist {
		if err := s.repo.ClearSubscriptions(ctx, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("Failed to clear subscriptions during role reconciliation")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("User registered")
	return user, nil
}

// Get returns one user by ID
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

// Count returns the total number of users
func (s *userService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// ToggleSubscription flips the principal's subscription to a publisher
// or journalist. Readers only: journalists and editors hold no
// subscription sets. A journalist-kind subscription must target a user
// who actually holds the journalist role.
func (s *userService) ToggleSubscription(ctx context.Context, p *auth.Principal, targetID string, kind models.SubscriptionKind) (bool, error) {
	if !auth.Can(p, auth.CapSubscribe) {
		return false, ErrForbidden
	}
	if !models.ValidSubscriptionKinds[kind] {
		return false, &ValidationError{Fields: []validation.FieldError{
			{Field: "kind", Message: "kind must be one of: publisher, journalist", Value: string(kind)},
		}}
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrNotFound
	}
	if kind == models.SubscriptionJournalist && target.Role != models.RoleJournalist {
		return false, &ValidationError{Fields: []validation.FieldError{
			{Field: "target_id", Message: "target is not a journalist", Value: targetID},
		}}
	}

	exists, err := s.repo.SubscriptionExists(ctx, p.ID, targetID, kind)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.repo.RemoveSubscription(ctx, p.ID, targetID, kind); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.repo.AddSubscription(ctx, &models.Subscription{
		UserID:   p.ID,
		TargetID: targetID,
		Kind:     kind,
	}); err != nil {
		return false, err
	}
	return true, nil
}

// Subscriptions returns the principal's subscription sets
func (s *userService) Subscriptions(ctx context.Context, p *auth.Principal) ([]*models.Subscription, error) {
	if p == nil {
		return nil, ErrForbidden
	}
	return s.repo.ListSubscriptions(ctx, p.ID)
}
