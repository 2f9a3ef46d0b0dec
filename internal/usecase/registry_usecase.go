package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegistryUsecase defines the interface for device token registration use cases
type RegistryUsecase interface {
	// Subscribe registers a push token for the member. Registration is
	// idempotent and reassigns the token when another member owned it.
	Subscribe(ctx context.Context, userID uuid.UUID, token string) error

	// Unsubscribe deactivates the given token, or every token of the
	// member when token is empty. Returns how many tokens were
	// deactivated; unsubscribing something not registered is a no-op.
	Unsubscribe(ctx context.Context, userID uuid.UUID, token string) (int64, error)
}
