// Package service holds the business logic of the aura server: account
// registration and verification, sessions, password reset, profile
// management and the encrypted journal.
//
// Services receive already decoded request models, enforce the rules that
// span several repositories and return sentinel errors from errors.go
// (possibly wrapped) that the transport layer maps to responses. Input
// validation lives in wrappers (see Wrap) so the core services can assume
// well-formed input.
package service

import (
	"context"

	"github.com/MKhiriev/aura/models"
)

// AuthService registers accounts, completes email verification and issues
// session tokens.
type AuthService interface {
	// Register creates an unverified account, or refreshes name and
	// password of an existing unverified one, and mails a new passcode.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// VerifyEmail consumes the passcode, marks the account verified and
	// logs the user in.
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VerificationService manages one-time secrets: registration passcodes and
// password reset tokens. Only keyed hashes are stored.
type VerificationService interface {
	IssueRegistrationOTP(ctx context.Context, user models.User) error
	VerifyRegistrationOTP(ctx context.Context, email, otp string) (models.User, error)
	IssueResetToken(ctx context.Context, user models.User) error
	// ConsumeResetToken burns a live reset token and returns its owner.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

type PasswordResetService interface {
	// ForgotPassword mails a reset link. Unknown emails are not reported.
	ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

type AccountService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.Profile, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID string, req models.DeleteAccountRequest) error
}

// EntryService is the only path to journal entries. Content is encrypted
// before it reaches the store and decrypted on the way out.
type EntryService interface {
	// Create stores a new entry and returns the stored record, whose
	// Content is the ciphertext.
	Create(ctx context.Context, userID string, req models.CreateEntryRequest) (models.Entry, error)
	List(ctx context.Context, userID string) ([]models.Entry, error)
	Get(ctx context.Context, userID, entryID string) (models.Entry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

// KeyRotationService rewrites entries encrypted with retired keys.
type KeyRotationService interface {
	ReencryptEntries(ctx context.Context, batchSize uint64) (models.ReencryptReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PasswordResetServiceWrapper interface {
	Wrap(PasswordResetService) PasswordResetService
}

type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}
