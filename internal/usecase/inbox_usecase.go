// Package usecase defines the application-facing interfaces of the
// notification service.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxPage is one cached view of a member's inbox. UnreadCount is the
// member's true unread total, independent of the page's limit or filter.
type InboxPage struct {
	Notifications []*entity.NotificationRecord `json:"notifications"`
	UnreadCount   int64                        `json:"unreadCount"`
	Total         int                          `json:"total"`
}

// InboxUsecase defines the interface for inbox read and mark-read use cases
type InboxUsecase interface {
	// ListInbox returns the newest records for a member, newest first.
	// A non-positive limit falls back to the configured default and
	// limits above the configured maximum are clamped.
	ListInbox(ctx context.Context, userID uuid.UUID, limit int, unreadOnly bool) (*InboxPage, error)

	// MarkRead marks the given records as read and returns how many of
	// the requested ids exist and belong to the member. Repeating the
	// call with the same ids returns the same count.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// MarkAllRead marks every unread record of the member as read and
	// returns the number of records transitioned.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
