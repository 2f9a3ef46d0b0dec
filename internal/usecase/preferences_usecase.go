package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferencesPatch is a partial preference update. Nil fields keep the
// member's current value.
type PreferencesPatch struct {
	Events   *bool `json:"events"`
	Projects *bool `json:"projects"`
	Admin    *bool `json:"admin"`
	Email    *bool `json:"email"`
}

// PreferencesUsecase defines the interface for notification preference use cases
type PreferencesUsecase interface {
	// GetPreferences returns the member's stored preferences, or the
	// all-enabled defaults when nothing was ever stored.
	GetPreferences(ctx context.Context, userID uuid.UUID) (entity.NotificationPreferences, error)

	// UpdatePreferences merges the patch over the current values and
	// stores the result, returning the merged set.
	UpdatePreferences(ctx context.Context, userID uuid.UUID, patch PreferencesPatch) (entity.NotificationPreferences, error)
}
