package adapter

import (
	"context"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP accepts one session and records the envelope and data.
type fakeSMTP struct {
	ln   net.Listener
	wg   sync.WaitGroup
	from string
	rcpt string
	data string
}

func startFakeSMTP(t *testing.T) *fakeSMTP {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakeSMTP{ln: ln}
	f.wg.Add(1)
	go f.serve()
	t.Cleanup(func() { ln.Close() })

	return f
}

func (f *fakeSMTP) serve() {
	defer f.wg.Done()

	conn, err := f.ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 fake ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			_ = tp.PrintfLine("250 fake")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			f.from = strings.Trim(line[len("MAIL FROM:"):], "<> ")
			_ = tp.PrintfLine("250 ok")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			f.rcpt = strings.Trim(line[len("RCPT TO:"):], "<> ")
			_ = tp.PrintfLine("250 ok")
		case cmd == "DATA":
			_ = tp.PrintfLine("354 go ahead")
			lines, _ := tp.ReadDotLines()
			f.data = strings.Join(lines, "\n")
			_ = tp.PrintfLine("250 queued")
		case cmd == "QUIT":
			_ = tp.PrintfLine("221 bye")
			return
		default:
			_ = tp.PrintfLine("502 unsupported")
		}
	}
}

func (f *fakeSMTP) mailConfig(t *testing.T) config.Mail {
	host, port, err := net.SplitHostPort(f.ln.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	return config.Mail{SMTPHost: host, SMTPPort: p, From: "Aura <no-reply@aura.local>", Timeout: 2 * time.Second}
}

func TestSMTPMailer_Send(t *testing.T) {
	srv := startFakeSMTP(t)

	m, err := NewSMTPMailer(srv.mailConfig(t), logger.Nop())
	require.NoError(t, err)

	err = m.Send(context.Background(), models.MailMessage{To: "Ann <ann@example.com>", Subject: "Código", Body: "line one\nline two"})
	require.NoError(t, err)
	srv.wg.Wait()

	assert.Equal(t, "no-reply@aura.local", srv.from)
	assert.Equal(t, "ann@example.com", srv.rcpt)
	assert.Contains(t, srv.data, "To: Ann <ann@example.com>")
	assert.Contains(t, srv.data, "Subject: =?utf-8?q?C=C3=B3digo?=")
	assert.Contains(t, srv.data, "line one\nline two")
}

func TestSMTPMailer_Unreachable(t *testing.T) {
	srv := startFakeSMTP(t)
	cfg := srv.mailConfig(t)
	srv.ln.Close()

	m, err := NewSMTPMailer(cfg, logger.Nop())
	require.NoError(t, err)

	err = m.Send(context.Background(), models.MailMessage{To: "ann@example.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrDelivery)
}

func TestNewSMTPMailer_InvalidSender(t *testing.T) {
	_, err := NewSMTPMailer(config.Mail{SMTPHost: "localhost", SMTPPort: 25, From: "not an address"}, logger.Nop())
	assert.Error(t, err)
}

func TestSMTPMailer_ComposeNormalisesLineEndings(t *testing.T) {
	m, err := NewSMTPMailer(config.Mail{SMTPHost: "localhost", SMTPPort: 25, From: "no-reply@aura.local"}, logger.Nop())
	require.NoError(t, err)
	sm := m.(*smtpMailer)
	sm.clock = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	raw := string(sm.compose(models.MailMessage{To: "ann@example.com", Subject: "Hi", Body: "a\nb\r\nc"}))

	assert.True(t, strings.HasPrefix(raw, "From: <no-reply@aura.local>\r\n"))
	assert.Contains(t, raw, "Date: Fri, 02 Jan 2026 03:04:05 +0000\r\n")
	assert.Contains(t, raw, "\r\n\r\na\r\nb\r\nc\r\n")
	assert.NotContains(t, strings.ReplaceAll(raw, "\r\n", ""), "\n")
}

func TestSMTPMailer_ContextCancelled(t *testing.T) {
	srv := startFakeSMTP(t)
	m, err := NewSMTPMailer(srv.mailConfig(t), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = m.Send(ctx, models.MailMessage{To: "ann@example.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrDelivery)
}
