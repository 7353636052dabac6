// Package lifecycle holds shared timeouts for process start and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart pings and OnStop shutdowns.
const DefaultTimeout = 10 * time.Second
