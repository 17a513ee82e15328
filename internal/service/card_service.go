package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/store"
)

// CardService provides card operations for the acting user.
type CardService interface {
	// ListCards returns all cards, newest first.
	ListCards(ctx context.Context) ([]*domain.Card, error)

	// CreateCard creates a card owned by userID.
	CreateCard(ctx context.Context, userID, name, link string) (*domain.Card, error)

	// DeleteCard removes a card owned by userID and returns it as it was
	// before removal. Deleting another user's card is a Forbidden failure.
	DeleteCard(ctx context.Context, userID, cardID string) (*domain.Card, error)

	// LikeCard adds userID to the card's likes. Liking twice is a no-op.
	LikeCard(ctx context.Context, userID, cardID string) (*domain.Card, error)

	// UnlikeCard removes userID from the card's likes if present.
	UnlikeCard(ctx context.Context, userID, cardID string) (*domain.Card, error)
}

// CardServiceImpl implements the CardService interface
type CardServiceImpl struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

var _ CardService = (*CardServiceImpl)(nil)

// NewCardService creates a new CardService
func NewCardService(cardStore store.CardStore, logger *slog.Logger) (*CardServiceImpl, error) {
	if cardStore == nil {
		return nil, errors.New("cardStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CardServiceImpl{
		cardStore: cardStore,
		logger:    logger.With(slog.String("component", "card_service")),
	}, nil
}

// ListCards implements CardService.
func (s *CardServiceImpl) ListCards(ctx context.Context) ([]*domain.Card, error) {
	cards, err := s.cardStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// CreateCard implements CardService.
func (s *CardServiceImpl) CreateCard(ctx context.Context, userID, name, link string) (*domain.Card, error) {
	card, err := domain.NewCard(name, link, userID)
	if err != nil {
		return nil, domain.NewInvalidDataError(MsgCardInvalid)
	}

	if err := s.cardStore.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.logger.Debug("card created",
		slog.String("card_id", card.ID),
		slog.String("owner_id", userID))
	return card, nil
}

// DeleteCard implements CardService.
func (s *CardServiceImpl) DeleteCard(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	cardID = domain.NormalizeID(cardID)
	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, cardNotFound(cardID)
		}
		return nil, fmt.Errorf("failed to retrieve card: %w", err)
	}

	if !card.IsOwnedBy(userID) {
		s.logger.Debug("card deletion refused: not owner",
			slog.String("card_id", cardID),
			slog.String("user_id", userID))
		return nil, domain.NewForbiddenError(MsgCardNotOwned)
	}

	if err := s.cardStore.Delete(ctx, cardID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, cardNotFound(cardID)
		}
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}

	s.logger.Debug("card deleted", slog.String("card_id", cardID))
	return card, nil
}

// LikeCard implements CardService.
func (s *CardServiceImpl) LikeCard(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	cardID = domain.NormalizeID(cardID)
	card, err := s.cardStore.AddLike(ctx, cardID, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, cardNotFound(cardID)
		}
		return nil, fmt.Errorf("failed to like card: %w", err)
	}
	return card, nil
}

// UnlikeCard implements CardService.
func (s *CardServiceImpl) UnlikeCard(ctx context.Context, userID, cardID string) (*domain.Card, error) {
	cardID = domain.NormalizeID(cardID)
	card, err := s.cardStore.RemoveLike(ctx, cardID, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, cardNotFound(cardID)
		}
		return nil, fmt.Errorf("failed to unlike card: %w", err)
	}
	return card, nil
}
