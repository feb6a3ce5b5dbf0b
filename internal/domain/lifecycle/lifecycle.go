// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of long-lived
// resources (database pool, HTTP server, event publisher).
const DefaultTimeout = 10 * time.Second
