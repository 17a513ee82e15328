package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/redact"
)

// Recoverer turns a panic in a downstream handler into an Internal failure
// through the normal failure path. http.ErrAbortHandler is re-raised so
// net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// ALLOW-PANIC: net/http handles this sentinel itself
				panic(rec)
			}

			logger.FromContext(r.Context()).Error("panic recovered",
				slog.String("panic", redact.String(fmt.Sprint(rec))),
				slog.String("stack", string(debug.Stack())))
			shared.RespondWithFailure(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
