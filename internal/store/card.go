package store

import (
	"context"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card.
	// Returns ErrInvalidReference if the owner does not exist.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card with its likes.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id string) (*domain.Card, error)

	// List returns all cards, newest first.
	List(ctx context.Context) ([]*domain.Card, error)

	// Delete removes a card and its likes.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, id string) error

	// AddLike records that userID likes the card. Adding an existing like
	// is a no-op. Returns the updated card or ErrCardNotFound.
	AddLike(ctx context.Context, cardID, userID string) (*domain.Card, error)

	// RemoveLike removes userID's like if present. Returns the updated card
	// or ErrCardNotFound.
	RemoveLike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}
