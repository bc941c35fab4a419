// Package delivery defines the contract every transport implementation fulfils.
package delivery

import "context"

// Delivery is a server that can be started by the application bootstrap.
type Delivery interface {
	// Serve blocks and serves requests until the server is shut down.
	Serve(ctx context.Context) error
}
