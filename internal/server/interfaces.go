package server

// Server is the lifecycle of the backend's transports.
type Server interface {
	// RunServer starts serving and blocks until a stop signal arrives and
	// every transport has shut down.
	RunServer()

	// Shutdown gracefully stops all transports.
	Shutdown()
}
