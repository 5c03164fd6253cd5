// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
)

type smtpMailer struct {
	addr    string
	host    string
	from    *mail.Address
	auth    smtp.Auth
	timeout time.Duration
	tlsConf *tls.Config
	clock   func() time.Time
	logger  *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that delivers through cfg.SMTPHost.
// STARTTLS is used when the server offers it; PLAIN auth is used when a
// username is configured.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: empty smtp host", ErrInvalidMessage)
	}

	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", cfg.From, err)
	}

	m := &smtpMailer{
		addr:    net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		host:    cfg.SMTPHost,
		from:    from,
		timeout: cfg.Timeout,
		tlsConf: &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12},
		clock:   time.Now,
		logger:  logger,
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}

	return m, nil
}

// Send implements [Mailer].
func (m *smtpMailer) Send(ctx context.Context, msg models.MailMessage) error {
	log := logger.FromContext(ctx)

	if err := checkMessage(msg); err != nil {
		return err
	}
	to, err := mail.ParseAddress(msg.To)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	if err = m.deliver(ctx, to.Address, m.compose(msg)); err != nil {
		log.Err(err).Str("func", "*smtpMailer.Send").Msg("smtp delivery failed")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	log.Debug().Str("func", "*smtpMailer.Send").Str("subject", msg.Subject).Msg("mail delivered")
	return nil
}

func (m *smtpMailer) deliver(ctx context.Context, rcpt string, body []byte) error {
	dialer := net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return err
	}

	deadline, ok := ctx.Deadline()
	if !ok && m.timeout > 0 {
		deadline = time.Now().Add(m.timeout)
	}
	if !deadline.IsZero() {
		conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(m.tlsConf); err != nil {
			return err
		}
	}
	if m.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err = c.Auth(m.auth); err != nil {
				return err
			}
		}
	}

	if err = c.Mail(m.from.Address); err != nil {
		return err
	}
	if err = c.Rcpt(rcpt); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(body); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return c.Quit()
}

// compose renders RFC 5322 headers and a CRLF-normalised UTF-8 text body.
func (m *smtpMailer) compose(msg models.MailMessage) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.from.String())
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", m.clock().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.Write(bytes.ReplaceAll(bytes.ReplaceAll([]byte(msg.Body), []byte("\r\n"), []byte("\n")), []byte("\n"), []byte("\r\n")))
	buf.WriteString("\r\n")

	return buf.Bytes()
}
