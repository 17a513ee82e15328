package api

import (
	"net/http"

	apimw "github.com/phrazzld/mesto-api/internal/api/middleware"
	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to http.HandlerFunc, sending any returned error through
// the failure normalizer.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			shared.RespondWithFailure(w, r, err)
		}
	}
}

// actingUserID returns the user attached by the auth gate.
func actingUserID(r *http.Request) (string, error) {
	userID, ok := apimw.GetUserID(r)
	if !ok {
		return "", domain.NewUnauthenticatedError(shared.MsgAuthRequired)
	}
	return userID, nil
}

// boundBody returns the request body stored by middleware.BindJSON.
func boundBody[T any](r *http.Request) (*T, error) {
	body, ok := shared.BodyFromContext[T](r.Context())
	if !ok {
		return nil, domain.NewValidationError(shared.MsgInvalidJSON)
	}
	return body, nil
}
