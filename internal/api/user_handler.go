package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/service"
)

// UserHandler serves the /users routes.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		return err
	}
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
	return nil
}

// GetCurrentUser handles GET /users/me.
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}

	user, err := h.users.GetCurrentUser(r.Context(), userID)
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, userToResponse(user))
	return nil
}

// GetUser handles GET /users/{userId}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) error {
	user, err := h.users.GetUser(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, userToResponse(user))
	return nil
}

// UpdateProfile handles PATCH /users/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}
	req, err := boundBody[ProfileRequest](r)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateProfile(r.Context(), userID, req.Name, req.About)
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, userToResponse(user))
	return nil
}

// UpdateAvatar handles PATCH /users/me/avatar.
func (h *UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) error {
	userID, err := actingUserID(r)
	if err != nil {
		return err
	}
	req, err := boundBody[AvatarRequest](r)
	if err != nil {
		return err
	}

	user, err := h.users.UpdateAvatar(r.Context(), userID, req.Avatar)
	if err != nil {
		return err
	}
	shared.RespondWithData(w, r, userToResponse(user))
	return nil
}
