// Package delivery defines the common contract implemented by the process
// entry points (HTTP API, Pub/Sub worker, scheduler).
package delivery

import (
	"context"
)

// Delivery is a long-running server started by the cmd binaries.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
