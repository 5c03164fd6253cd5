// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the aura server.
//
// The primary abstraction is [Mailer], which decouples the services from the
// mail transport. Three implementations ship with the package: an HTTP mail
// relay client ([NewHTTPMailer]), an SMTP client ([NewSMTPMailer]) and a
// console writer for development ([NewConsoleMailer]). [NewMailer] picks one
// from configuration.
//
// Error values defined in errors.go are mapped from relay HTTP status codes
// by mapHTTPError so that callers can use [errors.Is] regardless of transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/aura/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers a single plain-text message.
type Mailer interface {
	// Send delivers msg or returns an error. Implementations must honour
	// ctx cancellation and must not log the message body.
	Send(ctx context.Context, msg models.MailMessage) error
}
