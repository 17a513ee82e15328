package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   Kind
		status int
		name   string
	}{
		{KindNotFound, http.StatusNotFound, "not_found"},
		{KindForbidden, http.StatusForbidden, "forbidden"},
		{KindConflict, http.StatusConflict, "conflict"},
		{KindInvalidData, http.StatusBadRequest, "invalid_data"},
		{KindUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{KindValidationSchema, http.StatusBadRequest, "validation_schema"},
		{KindInternal, http.StatusInternalServerError, "internal"},
		{Kind(99), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.status, tc.kind.Status())
			assert.Equal(t, tc.name, tc.kind.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *Error
		kind Kind
	}{
		{NewNotFoundError("missing"), KindNotFound},
		{NewForbiddenError("missing"), KindForbidden},
		{NewConflictError("missing"), KindConflict},
		{NewInvalidDataError("missing"), KindInvalidData},
		{NewUnauthenticatedError("missing"), KindUnauthenticated},
		{NewValidationError("missing"), KindValidationSchema},
		{NewInternalError("missing"), KindInternal},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.kind, tc.err.Kind)
		assert.Equal(t, "missing", tc.err.Message)
		assert.Equal(t, tc.kind.Status(), tc.err.Status())
	}
}

func TestAsErrorThroughWrapping(t *testing.T) {
	t.Parallel()

	original := NewForbiddenError("not yours")
	wrapped := fmt.Errorf("delete card: %w", original)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Same(t, original, got, "failure must propagate unchanged")
	assert.True(t, IsKind(wrapped, KindForbidden))
	assert.False(t, IsKind(wrapped, KindNotFound))

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsKind(nil, KindInternal))
}
