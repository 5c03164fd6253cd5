package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure. The wrapped
	// validator error carries the user-facing reason.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	// ErrEmailNotRegistered is returned by email verification when no
	// account uses the submitted address.
	ErrEmailNotRegistered = errors.New("no account with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrAlreadyVerified    = errors.New("email is already verified")

	ErrInvalidOrExpiredOTP   = errors.New("invalid or expired verification code")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	ErrIncorrectCurrentPassword = errors.New("current password is incorrect")
	ErrIncorrectPassword        = errors.New("incorrect password")

	ErrEntryNotFound = errors.New("entry not found")
	ErrAccessDenied  = errors.New("access to entry denied")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrSecretGenerationFailed = errors.New("secret generation failed")
	ErrEncryptionFailed       = errors.New("entry encryption failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
