package server

// Server defines the lifecycle of the stager server.
type Server interface {
	// RunServer starts serving requests and the background workers, and
	// blocks until a stop signal arrives or the listener fails.
	RunServer()

	// Shutdown gracefully stops the server and the workers.
	Shutdown()
}
