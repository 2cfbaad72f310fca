// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks such as pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
