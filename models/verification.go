package models

import "time"

// VerificationPurpose distinguishes the flows that issue one-time secrets.
type VerificationPurpose string

const (
	// PurposeEmailVerification marks a 6-digit registration passcode.
	PurposeEmailVerification VerificationPurpose = "email_verification"

	// PurposePasswordReset marks an opaque password-reset token.
	PurposePasswordReset VerificationPurpose = "password_reset"
)

// VerificationCode is a pending one-time secret. At most one exists per
// (UserID, Purpose); issuing a new one replaces the old one.
//
// Only a keyed hash of the secret is persisted, never the secret itself.
type VerificationCode struct {
	UserID     string              `json:"-"`
	Purpose    VerificationPurpose `json:"purpose"`
	SecretHash string              `json:"-"`
	ExpiresAt  time.Time           `json:"expires_at"`
	CreatedAt  time.Time           `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VerificationCode model.
func (v VerificationCode) TableName() string {
	return "verification_codes"
}

// Expired reports whether the code is no longer usable at the given moment.
// A code expiring exactly at now is already expired.
func (v VerificationCode) Expired(now time.Time) bool {
	return !v.ExpiresAt.After(now)
}
