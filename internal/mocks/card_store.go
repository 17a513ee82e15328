package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// MockCardStore is an in-memory store.CardStore. When Users is set,
// Create rejects cards whose owner is not stored there.
type MockCardStore struct {
	mu    sync.RWMutex
	cards map[string]*domain.Card

	Users *MockUserStore

	CreateFn     func(ctx context.Context, card *domain.Card) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Card, error)
	ListFn       func(ctx context.Context) ([]*domain.Card, error)
	DeleteFn     func(ctx context.Context, id string) error
	AddLikeFn    func(ctx context.Context, cardID, userID string) (*domain.Card, error)
	RemoveLikeFn func(ctx context.Context, cardID, userID string) (*domain.Card, error)
}

var _ store.CardStore = (*MockCardStore)(nil)

// NewMockCardStore creates an empty MockCardStore.
func NewMockCardStore(users *MockUserStore) *MockCardStore {
	return &MockCardStore{
		cards: make(map[string]*domain.Card),
		Users: users,
	}
}

func cloneCard(c *domain.Card) *domain.Card {
	clone := *c
	clone.Likes = append([]string{}, c.Likes...)
	return &clone
}

// Create implements store.CardStore.
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	if m.Users != nil && !m.Users.Exists(card.Owner) {
		return store.ErrInvalidReference
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cards[card.ID]; exists {
		return store.ErrDuplicate
	}
	m.cards[card.ID] = cloneCard(card)
	return nil
}

// GetByID implements store.CardStore.
func (m *MockCardStore) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	card, ok := m.cards[id]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	return cloneCard(card), nil
}

// List implements store.CardStore. Cards are returned newest first.
func (m *MockCardStore) List(ctx context.Context) ([]*domain.Card, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	cards := make([]*domain.Card, 0, len(m.cards))
	for _, card := range m.cards {
		cards = append(cards, cloneCard(card))
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].ID > cards[j].ID
		}
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	return cards, nil
}

// Delete implements store.CardStore.
func (m *MockCardStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cards[id]; !ok {
		return store.ErrCardNotFound
	}
	delete(m.cards, id)
	return nil
}

// AddLike implements store.CardStore.
func (m *MockCardStore) AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	if m.AddLikeFn != nil {
		return m.AddLikeFn(ctx, cardID, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	if !card.IsLikedBy(userID) {
		card.Likes = append(card.Likes, userID)
	}
	return cloneCard(card), nil
}

// RemoveLike implements store.CardStore.
func (m *MockCardStore) RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	if m.RemoveLikeFn != nil {
		return m.RemoveLikeFn(ctx, cardID, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[cardID]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	likes := card.Likes[:0]
	for _, id := range card.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	card.Likes = likes
	return cloneCard(card), nil
}
