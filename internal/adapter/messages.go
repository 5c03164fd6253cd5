package adapter

import (
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/aura/models"
)

// VerificationMessage builds the registration passcode mail.
func VerificationMessage(to, name, otp string, ttl time.Duration) models.MailMessage {
	return models.MailMessage{
		To:      to,
		Subject: "Your Aura verification code",
		Body: fmt.Sprintf("Hi %s,\n\nyour verification code is %s.\nIt expires in %s.\n\n"+
			"If you did not sign up for Aura, you can ignore this message.\n", name, otp, humanDuration(ttl)),
	}
}

// PasswordResetMessage builds the reset link mail. The token is passed as
// the "token" query parameter of resetURL.
func PasswordResetMessage(to, name, resetURL, token string, ttl time.Duration) models.MailMessage {
	return models.MailMessage{
		To:      to,
		Subject: "Reset your Aura password",
		Body: fmt.Sprintf("Hi %s,\n\nfollow this link to choose a new password:\n%s\n\nThe link expires in %s.\n\n"+
			"If you did not ask for a reset, you can ignore this message.\n", name, ResetLink(resetURL, token), humanDuration(ttl)),
	}
}

// ResetLink appends token to resetURL, keeping any existing query.
func ResetLink(resetURL, token string) string {
	u, err := url.Parse(resetURL)
	if err != nil {
		return resetURL + "?token=" + url.QueryEscape(token)
	}

	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	return u.String()
}

func humanDuration(d time.Duration) string {
	if d%time.Minute == 0 && d >= time.Minute {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	return d.String()
}
