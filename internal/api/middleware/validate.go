package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
)

// BindJSON decodes the request body into T, validates it and stores it in
// the request context for shared.BodyFromContext. Malformed JSON and
// schema violations are rejected before the next handler runs.
func BindJSON[T any](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := new(T)
		if err := shared.DecodeJSON(r, body); err != nil {
			shared.RespondWithFailure(w, r, domain.NewValidationError(shared.MsgInvalidJSON))
			return
		}
		if err := shared.ValidateStruct(body); err != nil {
			shared.RespondWithFailure(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithBody(r.Context(), body)))
	})
}

// ParamRule declares the validation tag for one chi URL parameter.
type ParamRule struct {
	Name string
	Tag  string
}

// ValidateParams checks chi URL parameters against rules. Violations are
// reported together, in rule order.
func ValidateParams(rules ...ParamRule) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var violations []string
			for _, rule := range rules {
				if msg := shared.ValidateVar(rule.Name, chi.URLParam(r, rule.Name), rule.Tag); msg != "" {
					violations = append(violations, msg)
				}
			}
			if len(violations) > 0 {
				shared.RespondWithFailure(w, r, domain.NewValidationError(strings.Join(violations, "; ")))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
