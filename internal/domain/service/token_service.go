package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims carries the identity the session token asserts. The portal
// authenticates members; this service only trusts and forwards the
// resulting user id and roles.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating the
// session JWTs carried on every API call.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
