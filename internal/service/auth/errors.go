package auth

import "errors"

// Token validation errors. Callers outside this package must not reveal
// which one occurred; they exist for logging and tests.
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token was issued in the future
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrInvalidUserID indicates the token does not carry a usable user ID
	ErrInvalidUserID = errors.New("authentication token has invalid user id")
)
