// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work such as draining HTTP
// servers and closing database pools.
const DefaultTimeout = 10 * time.Second
