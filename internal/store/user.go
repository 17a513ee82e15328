package store

import (
	"context"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user, including its password hash.
	// Email uniqueness is enforced atomically by the store;
	// returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID without the password hash.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetCredentialsByEmail retrieves a user by normalized email including
	// the password hash. It is the only read path that returns the hash.
	// Returns ErrUserNotFound if the user does not exist.
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users without password hashes.
	List(ctx context.Context) ([]*domain.User, error)

	// UpdateProfile sets name and about for the user and returns the result.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error)

	// UpdateAvatar sets the avatar URL for the user and returns the result.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error)
}
