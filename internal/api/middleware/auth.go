package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/platform/metrics"
	"github.com/phrazzld/mesto-api/internal/redact"
	"github.com/phrazzld/mesto-api/internal/service/auth"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate requires an Authorization header of the exact form
// "Bearer <token>" carrying a valid session token. On success the user ID
// is stored in the request context. Every rejection produces the same
// Unauthenticated failure; the cause is only logged.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.reject(w, r, metrics.AuthReasonMissingHeader, nil)
			return
		}

		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || token == "" || strings.ContainsAny(token, " \t") {
			m.reject(w, r, metrics.AuthReasonMalformed, nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			reason := metrics.AuthReasonInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				reason = metrics.AuthReasonExpired
			}
			m.reject(w, r, reason, err)
			return
		}

		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = logger.WithContext(ctx, logger.FromContext(ctx).With(slog.String("user_id", claims.UserID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string, cause error) {
	attrs := []any{slog.String("reason", reason)}
	if cause != nil {
		attrs = append(attrs, slog.String("error", redact.Error(cause)))
	}
	logger.FromContext(r.Context()).Debug("authentication rejected", attrs...)
	metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()

	shared.RespondWithFailure(w, r, domain.NewUnauthenticatedError(shared.MsgAuthRequired))
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (string, bool) {
	return shared.UserIDFromContext(r.Context())
}
