// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for inbox database operations.
//
// The unread listing deliberately has no ordering parameter: the backing
// store is not required to combine an equality filter with ordering on a
// different field, so callers sort the unread page in memory.
type NotificationRepository interface {
	// CreateNotification persists a new inbox record.
	CreateNotification(ctx context.Context, record *entity.NotificationRecord) error

	// FindRecentByUser retrieves up to limit records for a member,
	// ordered by creation time descending with ties broken by id.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationRecord, error)

	// FindUnreadByUser retrieves up to limit unread records for a
	// member in unspecified order.
	FindUnreadByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.NotificationRecord, error)

	// CountUnreadByUser returns the member's true unread count,
	// independent of any page truncation.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountByUserAndIDs returns how many of the given ids exist and
	// belong to the member, regardless of read state.
	CountByUserAndIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error)

	// MarkRead transitions the given records to read with the supplied
	// timestamp. Records already read keep their original ReadAt.
	// Returns the number of records transitioned.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, readAt time.Time) (int64, error)

	// MarkAllRead transitions every unread record of a member to read
	// and returns the number transitioned.
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)
}
