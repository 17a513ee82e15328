package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/phrazzld/mesto-api/internal/platform/logger"
	"github.com/phrazzld/mesto-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	conflict := domain.NewConflictError("A user with this email already exists")

	tests := []struct {
		name    string
		err     error
		kind    domain.Kind
		message string
	}{
		{"typed failure unchanged", conflict, domain.KindConflict, conflict.Message},
		{"wrapped typed failure", fmt.Errorf("register: %w", conflict), domain.KindConflict, conflict.Message},
		{"invalid entity", fmt.Errorf("update: %w", store.ErrInvalidEntity), domain.KindInvalidData, MsgInvalidData},
		{"invalid reference", store.ErrInvalidReference, domain.KindInvalidData, MsgInvalidData},
		{"untyped error", errors.New("dial tcp 10.0.0.1:5432: connection refused"), domain.KindInternal, MsgInternal},
		{"store not found is not classified", store.ErrCardNotFound, domain.KindInternal, MsgInternal},
		{"nil", nil, domain.KindInternal, MsgInternal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Normalize(tc.err)
			assert.Equal(t, tc.kind, got.Kind)
			assert.Equal(t, tc.message, got.Message)
		})
	}

	assert.Same(t, conflict, Normalize(conflict))
}

func TestRespondWithFailure(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLevel  string
	}{
		{"not found", domain.NewNotFoundError("No card with id x"), http.StatusNotFound, "No card with id x", "DEBUG"},
		{"forbidden", domain.NewForbiddenError("nope"), http.StatusForbidden, "nope", "DEBUG"},
		{"conflict", domain.NewConflictError("dup"), http.StatusConflict, "dup", "DEBUG"},
		{"invalid data", store.ErrInvalidEntity, http.StatusBadRequest, MsgInvalidData, "DEBUG"},
		{"unauthenticated", domain.NewUnauthenticatedError(MsgAuthRequired), http.StatusUnauthorized, MsgAuthRequired, "DEBUG"},
		{"validation", domain.NewValidationError("email: is required"), http.StatusBadRequest, "email: is required", "DEBUG"},
		{"internal", errors.New("pq: password=hunter22 rejected"), http.StatusInternalServerError, MsgInternal, "ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := logger.CaptureLogs(t)

			r := httptest.NewRequest(http.MethodGet, "/cards", nil)
			r = r.WithContext(SetTraceID(r.Context()))
			rec := httptest.NewRecorder()

			RespondWithFailure(rec, r, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
			assert.Equal(t, GetTraceID(r.Context()), rec.Header().Get(TraceIDHeader))

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, map[string]any{"message": tc.wantBody}, body)

			entries := logs.Entries()
			require.NotEmpty(t, entries)
			last := entries[len(entries)-1]
			assert.Equal(t, tc.wantLevel, last["level"])
			assert.Equal(t, GetTraceID(r.Context()), last["trace_id"])
			assert.NotContains(t, logs.String(), "hunter22")
		})
	}
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := r.Context()

	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, GetTraceID(ctx))

	id := domain.NewID()
	ctx = WithUserID(ctx, id)
	got, ok := UserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	ctx = SetTraceID(ctx)
	assert.Len(t, GetTraceID(ctx), 36)

	type payload struct{ Name string }
	_, ok = BodyFromContext[payload](ctx)
	assert.False(t, ok)

	ctx = WithBody(ctx, &payload{Name: "x"})
	body, ok := BodyFromContext[payload](ctx)
	require.True(t, ok)
	assert.Equal(t, "x", body.Name)

	type other struct{}
	_, ok = BodyFromContext[other](ctx)
	assert.False(t, ok)
}
