// Package mocks provides shared test doubles for the store and auth
// interfaces.
//
// MockUserStore and MockCardStore are in-memory stores that honor the
// same contracts as the Postgres implementation (unique emails, cascading
// card likes, idempotent like/unlike). Every method can be overridden
// through its function field when a test needs a specific failure:
//
//	users := mocks.NewMockUserStore()
//	users.CreateFn = func(ctx context.Context, u *domain.User) error {
//	    return store.ErrEmailExists
//	}
//
// TestifyMockUserStore is a testify/mock variant for tests that assert on
// call expectations instead of state.
package mocks
