// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for member persistence.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
)

// MemberRepository defines the interface for member-related database
// operations. The portal owns member lifecycle; this service only reads
// members and maintains their push-related fields.
type MemberRepository interface {
	// FindMemberByID retrieves a member by their unique ID.
	FindMemberByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// TouchTokenUpdate bumps the member's lastTokenUpdate timestamp.
	TouchTokenUpdate(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdatePreferences stores the full preference set for a member.
	// Merging a partial update over the current values is the caller's
	// responsibility.
	UpdatePreferences(ctx context.Context, id uuid.UUID, prefs entity.NotificationPreferences) error
}
