// Package lifecycle holds shared constants for application start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as pings and graceful
// HTTP shutdown.
const DefaultTimeout = 10 * time.Second
