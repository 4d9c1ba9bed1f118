// Package server runs the backend transports: the REST API and the gRPC
// health service. It owns listener setup, signal handling and graceful
// shutdown, and knows nothing about routes or business logic.
package server
