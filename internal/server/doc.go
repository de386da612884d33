// Package server runs the host's HTTP boundary.
//
// It owns startup, signal handling and graceful shutdown, and closes the
// host resources (visualization window, store) once the listener stops.
package server
