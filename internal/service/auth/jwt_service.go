package auth

import (
	"context"
	"time"
)

// TokenLifetime is the fixed validity window of every session token.
const TokenLifetime = 7 * 24 * time.Hour

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed token for userID that expires exactly
	// TokenLifetime after issuance.
	GenerateToken(ctx context.Context, userID string) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// returns its claims. Any failure is one of the errors in errors.go.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified content of a session token.
type Claims struct {
	// UserID is the identifier of the user the token was issued for.
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
