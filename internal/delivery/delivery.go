// Package delivery defines the contract every transport-facing server
// implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server bound to one transport.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
