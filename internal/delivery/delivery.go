// Package delivery defines the contract every transport (HTTP, gRPC, ...)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a serving transport with its own lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
