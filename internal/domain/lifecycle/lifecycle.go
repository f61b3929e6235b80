// Package lifecycle holds timing constants shared by startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as the database ping and the
// HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
