package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/service"
)

// CardHandler serves the /cards routes.
type CardHandler struct {
	cards service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards service.CardService) *CardHandler {
	return &CardHandler{cards: cards}
}

// ListCards handles GET /cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) error {
	cards, err := h.cards.ListCards(r.Context())
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
	return nil
}

// CreateCard handles POST /cards. The acting user becomes the owner.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}
	req, err := boundBody[CardRequest](r)
	if err != nil {
		return err
	}

	card, err := h.cards.CreateCard(r.Context(), userID, req.Name, req.Link)
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, cardToResponse(card))
	return nil
}

// DeleteCard handles DELETE /cards/{cardId}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}

	card, err := h.cards.DeleteCard(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.DataResponse{
		Data:    cardToResponse(card),
		Message: service.MsgCardDeleted,
	})
	return nil
}

// LikeCard handles PUT /cards/{cardId}/likes.
func (h *CardHandler) LikeCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}

	card, err := h.cards.LikeCard(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, cardToResponse(card))
	return nil
}

// UnlikeCard handles DELETE /cards/{cardId}/likes.
func (h *CardHandler) UnlikeCard(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}

	card, err := h.cards.UnlikeCard(r.Context(), userID, chi.URLParam(r, "cardId"))
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, cardToResponse(card))
	return nil
}
