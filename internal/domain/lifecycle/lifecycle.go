// Package lifecycle holds shared shutdown settings for the deliveries.
package lifecycle

import (
	"time"
)

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
