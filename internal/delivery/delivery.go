// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface (HTTP server, background
// sweeper). Serve blocks until the delivery stops or the context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
