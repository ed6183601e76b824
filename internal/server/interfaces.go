package server

import "context"

// Server defines the lifecycle contract for the servers managed by this
// package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT is received.
	RunServer()

	// Run serves requests until ctx is done or the listener fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and runs the shutdown hooks.
	// Calling it more than once is safe.
	Shutdown()
}
