package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// MockUserStore is an in-memory store.UserStore.
type MockUserStore struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byEmail map[string]string

	CreateFn                func(ctx context.Context, user *domain.User) error
	GetByIDFn               func(ctx context.Context, id string) (*domain.User, error)
	GetCredentialsByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn                  func(ctx context.Context) ([]*domain.User, error)
	UpdateProfileFn         func(ctx context.Context, id, name, about string) (*domain.User, error)
	UpdateAvatarFn          func(ctx context.Context, id, avatar string) (*domain.User, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	email := domain.NormalizeEmail(user.Email)
	if _, exists := m.byEmail[email]; exists {
		return store.ErrEmailExists
	}
	if _, exists := m.users[user.ID]; exists {
		return store.ErrDuplicate
	}

	stored := *user
	m.users[user.ID] = &stored
	m.byEmail[email] = user.ID
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user.WithoutCredentials(), nil
}

// GetCredentialsByEmail implements store.UserStore.
func (m *MockUserStore) GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetCredentialsByEmailFn != nil {
		return m.GetCredentialsByEmailFn(ctx, email)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *m.users[id]
	return &clone, nil
}

// List implements store.UserStore. Users are returned ordered by ID.
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user.WithoutCredentials())
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// UpdateProfile implements store.UserStore.
func (m *MockUserStore) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, name, about)
	}
	return m.update(id, func(u *domain.User) {
		u.Name = name
		u.About = about
	})
}

// UpdateAvatar implements store.UserStore.
func (m *MockUserStore) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	if m.UpdateAvatarFn != nil {
		return m.UpdateAvatarFn(ctx, id, avatar)
	}
	return m.update(id, func(u *domain.User) {
		u.Avatar = avatar
	})
}

// Exists reports whether a user with id is stored.
func (m *MockUserStore) Exists(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[id]
	return ok
}

// Count returns the number of stored users.
func (m *MockUserStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *MockUserStore) update(id string, apply func(*domain.User)) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	apply(user)
	return user.WithoutCredentials(), nil
}
