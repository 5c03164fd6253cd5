// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers in a unified way, and the MailDispatcher that delivers
// outgoing mail off the request path.
package workers

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/aura/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; processing happens on
// goroutines owned by the worker. Shutdown stops accepting work, finishes
// what is already queued and returns when done or when ctx expires.
type Worker interface {
	Run()
	Shutdown(ctx context.Context) error
}

// MailQueue accepts mail for asynchronous delivery.
type MailQueue interface {
	// Enqueue hands msg to the background senders without blocking. It
	// reports false when the message was dropped.
	Enqueue(ctx context.Context, msg models.MailMessage) bool
}
