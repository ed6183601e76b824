// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling and graceful shutdown. Shutdown hooks
// (closing the database) run after the listener has drained.
package server
