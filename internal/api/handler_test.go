package api

import (
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/mesto-api/internal/api/shared"
	"github.com/phrazzld/mesto-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActingUserID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/users/me", nil)
	_, err := actingUserID(r)
	assert.True(t, domain.IsKind(err, domain.KindUnauthenticated))

	id := domain.NewID()
	r = r.WithContext(shared.WithUserID(r.Context(), id))
	got, err := actingUserID(r)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}
