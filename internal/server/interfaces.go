package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or a
	// transport fails, then shuts everything down.
	RunServer() error

	// Run is RunServer bound to ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport. It is safe to call more
	// than once.
	Shutdown()
}
