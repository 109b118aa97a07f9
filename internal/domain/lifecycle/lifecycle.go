// Package lifecycle holds shared start/stop conventions for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
