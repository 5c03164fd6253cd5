package adapter

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

type consoleMailer struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

// NewConsoleMailer constructs a [Mailer] for local development that prints
// each message to out instead of delivering it. The structured log only
// records that a message was printed.
func NewConsoleMailer(out io.Writer, logger *logger.Logger) Mailer {
	return &consoleMailer{out: out, logger: logger}
}

// Send implements [Mailer].
func (c *consoleMailer) Send(ctx context.Context, msg models.MailMessage) error {
	if err := checkMessage(msg); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "----- mail -----\nTo: %s\nSubject: %s\n\n%s\n----------------\n", msg.To, msg.Subject, msg.Body); err != nil {
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*consoleMailer.Send").Str("subject", msg.Subject).Msg("mail printed to console")
	return nil
}
