package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "wrapped ErrCardNotFound", err: fmt.Errorf("get card: %w", ErrCardNotFound), expected: true},
		{name: "ErrEmailExists", err: ErrEmailExists, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	withWrapped := NewStoreError("card", "delete", "failed to delete card", ErrCardNotFound)
	assert.Equal(t,
		"delete operation on card failed: failed to delete card: entity not found: card",
		withWrapped.Error())
	assert.ErrorIs(t, withWrapped, ErrCardNotFound)
	assert.ErrorIs(t, withWrapped, ErrNotFound)

	var storeErr *StoreError
	assert.ErrorAs(t, fmt.Errorf("outer: %w", withWrapped), &storeErr)
	assert.Equal(t, "card", storeErr.Entity)

	withoutWrapped := NewStoreError("user", "create", "bad data", nil)
	assert.Equal(t, "create operation on user failed: bad data", withoutWrapped.Error())
	assert.Nil(t, withoutWrapped.Unwrap())
}
