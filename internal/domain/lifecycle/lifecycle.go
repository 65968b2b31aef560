// Package lifecycle holds shared settings for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as DB pings and server shutdown.
const DefaultTimeout = 15 * time.Second
