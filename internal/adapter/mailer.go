package adapter

import (
	"fmt"
	"io"
	"net/mail"
	"strings"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

// NewMailer selects the transport from cfg: HTTP relay when APIURL is set,
// SMTP when SMTPHost is set, otherwise the console writer on console.
func NewMailer(cfg config.Mail, console io.Writer, log *logger.Logger) (Mailer, error) {
	switch {
	case cfg.APIURL != "":
		log.Info().Str("func", "NewMailer").Msg("using http mail relay")
		return NewHTTPMailer(cfg, log)
	case cfg.SMTPHost != "":
		log.Info().Str("func", "NewMailer").Str("host", cfg.SMTPHost).Msg("using smtp mailer")
		return NewSMTPMailer(cfg, log)
	default:
		log.Warn().Str("func", "NewMailer").Msg("no mail transport configured, printing mail to console")
		return NewConsoleMailer(console, log), nil
	}
}

func checkMessage(msg models.MailMessage) error {
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return fmt.Errorf("%w: header contains line break", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	return nil
}
