package mocks

import (
	"context"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

func userResult(args mock.Arguments) (*domain.User, error) {
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *TestifyMockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return userResult(m.Called(ctx, id))
}

// GetCredentialsByEmail is a mock implementation of store.UserStore.GetCredentialsByEmail
func (m *TestifyMockUserStore) GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userResult(m.Called(ctx, email))
}

// List is a mock implementation of store.UserStore.List
func (m *TestifyMockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*domain.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

// UpdateProfile is a mock implementation of store.UserStore.UpdateProfile
func (m *TestifyMockUserStore) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	return userResult(m.Called(ctx, id, name, about))
}

// UpdateAvatar is a mock implementation of store.UserStore.UpdateAvatar
func (m *TestifyMockUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	return userResult(m.Called(ctx, id, avatar))
}
