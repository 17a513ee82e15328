package shared

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/platform/metrics"
	"github.com/phrazzld/mesto-api/internal/redact"
	"github.com/phrazzld/mesto-api/internal/store"
)

// Messages for failures that did not arrive already classified.
const (
	MsgInternal     = "Internal server error"
	MsgInvalidData  = "Invalid request or data"
	MsgPathNotFound = "Requested path not found"
	MsgAuthRequired = "Authorization required"
	MsgInvalidJSON  = "Invalid request format"
)

// discriminators maps persistence sentinels onto classified failures.
// Order matters only if a sentinel wraps another; none currently do.
var discriminators = []struct {
	sentinel error
	kind     domain.Kind
	message  string
}{
	{store.ErrInvalidEntity, domain.KindInvalidData, MsgInvalidData},
	{store.ErrInvalidReference, domain.KindInvalidData, MsgInvalidData},
}

// Normalize turns any error into a classified failure. A *domain.Error is
// returned unchanged, persistence discriminators are mapped through a fixed
// table and everything else becomes an Internal failure whose message
// reveals nothing about the cause.
func Normalize(err error) *domain.Error {
	if domainErr, ok := domain.AsError(err); ok {
		return domainErr
	}
	for _, d := range discriminators {
		if errors.Is(err, d.sentinel) {
			return &domain.Error{Kind: d.kind, Message: d.message}
		}
	}
	return domain.NewInternalError(MsgInternal)
}

// RespondWithFailure normalizes err, logs it and writes {"message": ...}
// with the status of its kind. 5xx outcomes are logged at ERROR, 4xx at
// DEBUG. The underlying error is redacted before logging.
func RespondWithFailure(w http.ResponseWriter, r *http.Request, err error) {
	failure := Normalize(err)
	traceID := GetTraceID(r.Context())
	status := failure.Status()

	attrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("kind", failure.Kind.String()),
		slog.String("user_message", failure.Message),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)

	metrics.FailuresTotal.WithLabelValues(failure.Kind.String()).Inc()

	if traceID != "" {
		w.Header().Set(TraceIDHeader, traceID)
	}
	RespondWithJSON(w, r, status, MessageResponse{Message: failure.Message})
}
