// Package server runs the aura HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown of the HTTP server followed by the background workers.
package server
