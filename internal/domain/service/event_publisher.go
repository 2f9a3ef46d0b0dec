package service

import (
	"context"
)

// DispatchEvent is a queued request to fan a notification out to members
// or a topic. Other portal subsystems (event RSVPs, project approvals)
// enqueue these instead of calling the dispatch service inline.
type DispatchEvent struct {
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing.
	UserIDs   []string          `json:"user_ids,omitempty"`   // Target member ids; empty for topic broadcasts.
	Topic     string            `json:"topic,omitempty"`      // Provider-side topic; empty for member targeting.
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Icon      string            `json:"icon,omitempty"`
	URL       string            `json:"url,omitempty"`
	Category  string            `json:"category,omitempty"` // Preference category gating delivery.
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing dispatch events to
// a message queue for asynchronous processing by the push worker.
type EventPublisher interface {
	// PublishDispatchEvent publishes a dispatch event for async processing.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
