package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidName      = errors.New("name must be at least 2 characters")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidOTP       = errors.New("passcode must be 6 digits")
	ErrInvalidToken     = errors.New("invalid reset token")
	ErrInvalidDOB       = errors.New("date of birth must be YYYY-MM-DD")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyContent    = errors.New("content is required")
	ErrEmptyMood       = errors.New("mood is required")
	ErrInvalidEntryID  = errors.New("invalid entry ID")
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrMoodTooLong     = errors.New("mood is too long")
	ErrContentTooLarge = errors.New("content is too large")
)
