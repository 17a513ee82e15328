package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/redact"
	"github.com/phrazzld/mesto-api/internal/store"
)

const userColumns = "id, email, name, about, avatar"

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// If logger is nil, the default logger is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.Name, &user.About, &user.Avatar); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create implements store.UserStore.Create.
// The unique index on lower(email) decides races between concurrent signups.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, password_hash, name, about, avatar)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, domain.NormalizeEmail(user.Email), user.PasswordHash,
		user.Name, user.About, user.Avatar,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Debug("user insert hit unique constraint", slog.String("user_id", user.ID))
			return store.NewStoreError("user", "create", "email already registered", store.ErrEmailExists)
		}
		s.logger.Error("failed to create user",
			slog.String("user_id", user.ID),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	s.logger.Debug("user created", slog.String("user_id", user.ID))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return user, nil
}

// GetCredentialsByEmail implements store.UserStore.GetCredentialsByEmail
func (s *PostgresUserStore) GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, about, avatar
		 FROM users WHERE lower(email) = lower($1)`,
		domain.NormalizeEmail(email),
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name, &user.About, &user.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		return nil, MapError(err)
	}
	return &user, nil
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return users, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return s.updateReturning(ctx,
		`UPDATE users SET name = $2, about = $3, updated_at = now()
		 WHERE id = $1 RETURNING `+userColumns,
		id, name, about)
}

// UpdateAvatar implements store.UserStore.UpdateAvatar
func (s *PostgresUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return s.updateReturning(ctx,
		`UPDATE users SET avatar = $2, updated_at = now()
		 WHERE id = $1 RETURNING `+userColumns,
		id, avatar)
}

func (s *PostgresUserStore) updateReturning(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Debug("user update failed", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "update", "update failed", MapError(err))
	}
	return user, nil
}
