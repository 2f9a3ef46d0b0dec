// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device token persistence.
var (
	// ErrTokenNotFound is returned when a device token is not found.
	ErrTokenNotFound = errors.New("device token not found")
)

// TokenRepository defines the interface for device-token database operations.
// The set of active tokens for a member is the single source of truth for
// that member's device list; there is no separate token array to keep in sync.
type TokenRepository interface {
	// UpsertToken creates the token or, when the token value already
	// exists, reassigns it to the given owner and reactivates it.
	UpsertToken(ctx context.Context, token *entity.DeviceToken) error

	// FindTokenByValue retrieves a token by its opaque value.
	FindTokenByValue(ctx context.Context, token string) (*entity.DeviceToken, error)

	// FindActiveTokensByUser retrieves all active tokens owned by a member.
	FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeactivateToken marks a single token inactive. Returns
	// ErrTokenNotFound when the token value is unknown.
	DeactivateToken(ctx context.Context, token string) error

	// DeactivateTokensByUser marks every token owned by a member
	// inactive and returns how many were affected.
	DeactivateTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
