// Package delivery defines the transport-layer contract shared by the
// HTTP API and the push worker.
package delivery

import "context"

// Delivery is a long-running transport server. Serve blocks until the
// server stops or fails; shutdown is driven through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
