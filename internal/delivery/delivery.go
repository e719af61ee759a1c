// Package delivery defines the contract every transport front end of the
// application fulfills, so the entry point can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport surface, such as the HTTP server.
type Delivery interface {
	// Serve runs the delivery until it fails or is shut down.
	Serve(ctx context.Context) error
}
