package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchMessage is the content of one push, before per-record defaults
// are applied.
type DispatchMessage struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Icon     string            `json:"icon,omitempty"`
	URL      string            `json:"url,omitempty"`
	Category string            `json:"category,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}

// DispatchRequest targets either an explicit recipient list or a broadcast
// topic. Exactly one of UserIDs and Topic must be set.
type DispatchRequest struct {
	UserIDs []uuid.UUID
	Topic   string
	Message DispatchMessage
}

// DispatchResult aggregates a fan-out. A request can partially succeed;
// Errors carries one entry per failed send so callers see exactly what
// was not delivered.
type DispatchResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// DispatchUsecase defines the interface for push fan-out use cases
type DispatchUsecase interface {
	// Dispatch fans the message out synchronously and returns the
	// aggregate outcome. Send failures are collected, not fatal; a
	// store failure aborts the whole request.
	Dispatch(ctx context.Context, req *DispatchRequest) (*DispatchResult, error)

	// Enqueue hands the request to the event pipeline for asynchronous
	// processing by the push worker.
	Enqueue(ctx context.Context, req *DispatchRequest) error
}
