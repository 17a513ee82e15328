package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// Messages returned to callers by the credential verifier.
const (
	MsgEmailExists        = "A user with this email already exists"
	MsgInvalidCredentials = "Incorrect email or password"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
)

// dummyPassword is hashed once at construction; comparing against it keeps
// the unknown-email path as slow as the wrong-password path.
const dummyPassword = "mesto-dummy-password"

// RegisterParams carries signup input that has already passed schema validation.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
	About    string
	Avatar   string
}

// CredentialVerifier registers identities and exchanges email/password
// pairs for session tokens.
type CredentialVerifier struct {
	users     store.UserStore
	hasher    PasswordHasher
	tokens    JWTService
	dummyHash string
	logger    *slog.Logger
}

// NewCredentialVerifier creates a CredentialVerifier. It hashes a dummy
// password up front, so it fails only if the hasher does.
func NewCredentialVerifier(
	users store.UserStore,
	hasher PasswordHasher,
	tokens JWTService,
	logger *slog.Logger,
) (*CredentialVerifier, error) {
	if users == nil || hasher == nil || tokens == nil {
		return nil, errors.New("credential verifier requires user store, hasher and token service")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &CredentialVerifier{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
		logger:    logger.With(slog.String("component", "credential_verifier")),
	}, nil
}

// Register hashes the password and stores a new user. The store enforces
// email uniqueness atomically; a duplicate yields a Conflict failure.
// The returned user never carries the password hash.
func (v *CredentialVerifier) Register(ctx context.Context, params RegisterParams) (*domain.User, error) {
	hash, err := v.hasher.Hash(params.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewInvalidDataError(MsgPasswordTooLong)
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(params.Email, hash, params.Name, params.About, params.Avatar)
	if err != nil {
		return nil, domain.NewInvalidDataError("Invalid user data")
	}

	if err := v.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			v.logger.Debug("signup rejected: email already registered")
			return nil, domain.NewConflictError(MsgEmailExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	v.logger.Info("user registered", slog.String("user_id", user.ID))
	return user.WithoutCredentials(), nil
}

// Authenticate verifies the email/password pair and returns a signed
// session token. An unknown email and a wrong password produce the same
// Unauthenticated failure.
func (v *CredentialVerifier) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := v.users.GetCredentialsByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			return "", fmt.Errorf("failed to load credentials: %w", err)
		}
		_ = v.hasher.Compare(v.dummyHash, password)
		v.logger.Debug("signin rejected", slog.String("reason", "unknown email"))
		return "", domain.NewUnauthenticatedError(MsgInvalidCredentials)
	}

	if err := v.hasher.Compare(user.PasswordHash, password); err != nil {
		v.logger.Debug("signin rejected",
			slog.String("reason", "password mismatch"),
			slog.String("user_id", user.ID))
		return "", domain.NewUnauthenticatedError(MsgInvalidCredentials)
	}

	token, err := v.tokens.GenerateToken(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	v.logger.Debug("signin succeeded", slog.String("user_id", user.ID))
	return token, nil
}
