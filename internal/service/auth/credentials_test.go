package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/mocks"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/service/auth"
	"github.com/phrazzld/mesto-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type verifierFixture struct {
	users    *mocks.MockUserStore
	tokens   *mocks.MockJWTService
	verifier *auth.CredentialVerifier
}

func newVerifierFixture(t *testing.T) *verifierFixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	tokens := &mocks.MockJWTService{
		GenerateTokenFn: func(_ context.Context, userID string) (string, error) {
			return "token-for-" + userID, nil
		},
	}
	verifier, err := auth.NewCredentialVerifier(users, auth.NewBcryptHasher(bcrypt.MinCost), tokens, nil)
	require.NoError(t, err)

	return &verifierFixture{users: users, tokens: tokens, verifier: verifier}
}

func TestNewCredentialVerifierRequiresDependencies(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	_, err := auth.NewCredentialVerifier(nil, hasher, &mocks.MockJWTService{}, nil)
	assert.Error(t, err)
	_, err = auth.NewCredentialVerifier(mocks.NewMockUserStore(), nil, &mocks.MockJWTService{}, nil)
	assert.Error(t, err)
	_, err = auth.NewCredentialVerifier(mocks.NewMockUserStore(), hasher, nil, nil)
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("applies defaults and hides the hash", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)

		user, err := f.verifier.Register(ctx, auth.RegisterParams{
			Email:    "Diver@Example.com",
			Password: "secret1",
		})
		require.NoError(t, err)

		assert.True(t, domain.IsValidID(user.ID))
		assert.Equal(t, "diver@example.com", user.Email)
		assert.Equal(t, domain.DefaultUserName, user.Name)
		assert.Equal(t, domain.DefaultUserAbout, user.About)
		assert.Equal(t, domain.DefaultUserAvatar, user.Avatar)
		assert.Empty(t, user.PasswordHash)

		stored, err := f.users.GetCredentialsByEmail(ctx, "diver@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret1", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
	})

	t.Run("keeps provided profile", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)

		user, err := f.verifier.Register(ctx, auth.RegisterParams{
			Email:    "x@example.com",
			Password: "secret1",
			Name:     "Jacques",
			About:    "Sailor",
			Avatar:   "https://example.com/a.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jacques", user.Name)
		assert.Equal(t, "Sailor", user.About)
		assert.Equal(t, "https://example.com/a.png", user.Avatar)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)

		_, err := f.verifier.Register(ctx, auth.RegisterParams{Email: "x@example.com", Password: "secret1"})
		require.NoError(t, err)

		_, err = f.verifier.Register(ctx, auth.RegisterParams{Email: "X@example.com", Password: "other"})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindConflict))
		assert.Equal(t, 1, f.users.Count())
	})

	t.Run("wrapped store duplicate is a conflict", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)
		f.users.CreateFn = func(context.Context, *domain.User) error {
			return store.NewStoreError("user", "create", "email already registered", store.ErrEmailExists)
		}

		_, err := f.verifier.Register(ctx, auth.RegisterParams{Email: "x@example.com", Password: "secret1"})
		require.Error(t, err)
		derr, ok := domain.AsError(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindConflict, derr.Kind)
		assert.Equal(t, auth.MsgEmailExists, derr.Message)
	})

	t.Run("password over bcrypt limit is invalid data", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)

		_, err := f.verifier.Register(ctx, auth.RegisterParams{
			Email:    "x@example.com",
			Password: strings.Repeat("p", 80),
		})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindInvalidData))
		assert.Equal(t, 0, f.users.Count())
	})

	t.Run("store failure is propagated unclassified", func(t *testing.T) {
		t.Parallel()
		f := newVerifierFixture(t)
		dbErr := errors.New("connection reset")
		f.users.CreateFn = func(context.Context, *domain.User) error { return dbErr }

		_, err := f.verifier.Register(ctx, auth.RegisterParams{Email: "x@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, dbErr)
		_, classified := domain.AsError(err)
		assert.False(t, classified)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newVerifierFixture(t)
	user, err := f.verifier.Register(ctx, auth.RegisterParams{Email: "x@example.com", Password: "secret1"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantKind domain.Kind
		wantOK   bool
	}{
		{name: "valid", email: "x@example.com", password: "secret1", wantOK: true},
		{name: "email case ignored", email: "X@EXAMPLE.com", password: "secret1", wantOK: true},
		{name: "wrong password", email: "x@example.com", password: "secret2", wantKind: domain.KindUnauthenticated},
		{name: "unknown email", email: "nobody@example.com", password: "secret1", wantKind: domain.KindUnauthenticated},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := f.verifier.Authenticate(ctx, tc.email, tc.password)
			if tc.wantOK {
				require.NoError(t, err)
				assert.Equal(t, "token-for-"+user.ID, token)
				return
			}
			require.Error(t, err)
			assert.Empty(t, token)
			domainErr, ok := domain.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantKind, domainErr.Kind)
			assert.Equal(t, auth.MsgInvalidCredentials, domainErr.Message)
		})
	}
}

func TestAuthenticateDoesNotLogPassword(t *testing.T) {
	logs := logger.CaptureLogs(t)
	f := newVerifierFixture(t)

	_, err := f.verifier.Authenticate(context.Background(), "x@example.com", "hunter22")
	require.Error(t, err)
	assert.NotContains(t, logs.String(), "hunter22")
}

func TestAuthenticateStoreFailure(t *testing.T) {
	t.Parallel()
	f := newVerifierFixture(t)
	f.users.GetCredentialsByEmailFn = func(context.Context, string) (*domain.User, error) {
		return nil, errors.New("timeout")
	}

	_, err := f.verifier.Authenticate(context.Background(), "x@example.com", "secret1")
	require.Error(t, err)
	assert.False(t, domain.IsKind(err, domain.KindUnauthenticated))
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}
