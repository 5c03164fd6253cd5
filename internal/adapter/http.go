package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/models"
	"github.com/go-resty/resty/v2"
)

// relayMessage is the JSON body accepted by the mail relay.
type relayMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type httpMailer struct {
	client *resty.Client
	from   string

	logger *logger.Logger
}

// NewHTTPMailer constructs a [Mailer] that posts each message as JSON to
// cfg.APIURL, authenticating with cfg.APIToken as a bearer token when set.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed as a valid URL.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	endpoint, err := normalizeURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay address: %w", err)
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if token := strings.TrimSpace(cfg.APIToken); token != "" {
		client.SetAuthToken(token)
	}

	return &httpMailer{client: client, from: cfg.From, logger: logger}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Mailer].
func (h *httpMailer) Send(ctx context.Context, msg models.MailMessage) error {
	log := logger.FromContext(ctx)

	if err := checkMessage(msg); err != nil {
		return err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(relayMessage{From: h.from, To: msg.To, Subject: msg.Subject, Text: msg.Body}).
		Post("")
	if err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Msg("mail relay request failed")
		return fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpMailer.Send").Int("status", resp.StatusCode()).Msg("mail relay rejected message")
		return err
	}

	log.Debug().Str("func", "*httpMailer.Send").Str("subject", msg.Subject).Msg("mail accepted by relay")
	return nil
}
