package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// UserService provides profile reads and updates.
type UserService interface {
	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by ID. A missing user is a NotFound failure.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetCurrentUser retrieves the acting user.
	GetCurrentUser(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile replaces the acting user's name and about.
	UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error)

	// UpdateAvatar replaces the acting user's avatar URL.
	UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, logger *slog.Logger) (*UserServiceImpl, error) {
	if userStore == nil {
		return nil, errors.New("userStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}, nil
}

// ListUsers implements UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser implements UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	userID = domain.NormalizeID(userID)
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("user not found", slog.String("user_id", userID))
			return nil, userNotFound(userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// GetCurrentUser implements UserService.
// The acting user can be missing only if the account vanished after the
// token was issued.
func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Warn("acting user not found", slog.String("user_id", userID))
			return nil, domain.NewNotFoundError(msgActingUserMissing)
		}
		return nil, fmt.Errorf("failed to retrieve current user: %w", err)
	}
	return user, nil
}

// UpdateProfile implements UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID, name, about string) (*domain.User, error) {
	user, err := s.userStore.UpdateProfile(ctx, userID, name, about)
	if err != nil {
		return nil, s.updateError(userID, "profile", err)
	}

	s.logger.Debug("profile updated", slog.String("user_id", userID))
	return user, nil
}

// UpdateAvatar implements UserService.
func (s *UserServiceImpl) UpdateAvatar(ctx context.Context, userID, avatar string) (*domain.User, error) {
	user, err := s.userStore.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, s.updateError(userID, "avatar", err)
	}

	s.logger.Debug("avatar updated", slog.String("user_id", userID))
	return user, nil
}

func (s *UserServiceImpl) updateError(userID, field string, err error) error {
	if store.IsNotFoundError(err) {
		return userNotFound(userID)
	}
	return fmt.Errorf("failed to update %s: %w", field, err)
}
