// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied when a notification is created without an explicit
// deep link or icon. They match what the web client falls back to.
const (
	DefaultNotificationURL  = "/"
	DefaultNotificationIcon = "/icon-192x192.png"
)

// NotificationRecord is a single entry in a member's inbox. Records are
// append-only: after creation the only permitted mutation is the one-way
// transition of Read from false to true, which stamps ReadAt exactly once.
type NotificationRecord struct {
	ID        uuid.UUID         `json:"id"`                // Store-assigned unique identifier.
	UserID    uuid.UUID         `json:"user_id"`           // The member this record belongs to.
	Title     string            `json:"title"`             // Notification title.
	Body      string            `json:"body"`              // Notification body text.
	URL       string            `json:"url"`               // Deep link opened on click.
	Icon      string            `json:"icon"`              // Icon path shown by the client.
	Tag       string            `json:"tag,omitempty"`     // Optional grouping key.
	Data      map[string]string `json:"data,omitempty"`    // Optional opaque payload forwarded to the device.
	Read      bool              `json:"read"`              // Whether the member has seen this record.
	ReadAt    *time.Time        `json:"read_at,omitempty"` // Set exactly once, when Read flips to true.
	CreatedAt time.Time         `json:"created_at"`        // Immutable creation timestamp.
}

// NewNotificationRecord builds an unread record with defaults applied at
// the construction boundary, so optional fields are never defaulted ad
// hoc at read time.
func NewNotificationRecord(userID uuid.UUID, title, body string) *NotificationRecord {
	return &NotificationRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		URL:       DefaultNotificationURL,
		Icon:      DefaultNotificationIcon,
		CreatedAt: time.Now(),
	}
}
