package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/service/auth"
)

// CredentialService registers users and exchanges credentials for tokens.
// *auth.CredentialVerifier implements it.
type CredentialService interface {
	Register(ctx context.Context, params auth.RegisterParams) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	credentials CredentialService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

// Signup handles POST /signup. The body has already been validated.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) error {
	req, err := boundBody[SignupRequest](r)
	if err != nil {
		return err
	}

	user, err := h.credentials.Register(r.Context(), auth.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
	return nil
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) error {
	req, err := boundBody[SigninRequest](r)
	if err != nil {
		return err
	}

	token, err := h.credentials.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
	return nil
}
