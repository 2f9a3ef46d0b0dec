// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken maps an opaque push token to the member that owns it.
// A token value belongs to at most one member at a time; re-registering
// an existing token under another member reassigns ownership. Tokens are
// never rewritten in place, only deactivated.
type DeviceToken struct {
	Token        string    `json:"token"`         // Opaque push token, unique across all members.
	UserID       uuid.UUID `json:"user_id"`       // The member who owns this token.
	Active       bool      `json:"active"`        // False once the device unsubscribed or the provider rejected the token.
	SubscribedAt time.Time `json:"subscribed_at"` // Timestamp of the original registration.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last ownership or activity change.
}
