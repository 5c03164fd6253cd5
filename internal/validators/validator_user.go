package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/aura/models"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var (
	otpPattern        = regexp.MustCompile(`^[0-9]{6}$`)
	resetTokenPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

// UserValidator implements the Validator interface for account and
// authentication requests.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate request type. Both value
// and pointer forms are accepted.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.VerifyEmailRequest:
		return v.validateVerifyEmail(value, fields...)
	case *models.VerifyEmailRequest:
		return v.validateVerifyEmail(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ForgotPasswordRequest:
		return checkFields(fields, []string{FieldEmail}, func(f string) error {
			return v.checkEmail(f, value.Email)
		})
	case *models.ForgotPasswordRequest:
		return v.Validate(ctx, *value, fields...)

	case models.ResetPasswordRequest:
		return v.validateResetPassword(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateResetPassword(*value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfile(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.DeleteAccountRequest:
		return checkFields(fields, []string{FieldPasswordPresent}, func(f string) error {
			if f != FieldPasswordPresent {
				return ErrUnknownField
			}
			return validatePresentPassword(value.Password)
		})
	case *models.DeleteAccountRequest:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	return checkFields(fields, []string{FieldName, FieldEmail, FieldPassword}, func(f string) error {
		switch f {
		case FieldName:
			return validateName(req.Name)
		case FieldEmail:
			return validateEmail(req.Email)
		case FieldPassword:
			return validateNewPassword(req.Password)
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) validateVerifyEmail(req models.VerifyEmailRequest, fields ...string) error {
	return checkFields(fields, []string{FieldEmail, FieldOTP}, func(f string) error {
		switch f {
		case FieldEmail:
			return validateEmail(req.Email)
		case FieldOTP:
			if !otpPattern.MatchString(strings.TrimSpace(req.OTP)) {
				return ErrInvalidOTP
			}
			return nil
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	return checkFields(fields, []string{FieldEmail, FieldPasswordPresent}, func(f string) error {
		switch f {
		case FieldEmail:
			return validateEmail(req.Email)
		case FieldPasswordPresent:
			return validatePresentPassword(req.Password)
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) validateResetPassword(req models.ResetPasswordRequest, fields ...string) error {
	return checkFields(fields, []string{FieldToken, FieldPassword}, func(f string) error {
		switch f {
		case FieldToken:
			if !resetTokenPattern.MatchString(req.Token) {
				return ErrInvalidToken
			}
			return nil
		case FieldPassword:
			return validateNewPassword(req.Password)
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) validateUpdateProfile(req models.UpdateProfileRequest, fields ...string) error {
	return checkFields(fields, []string{FieldProfileUpdate, FieldName, FieldDOB}, func(f string) error {
		switch f {
		case FieldProfileUpdate:
			if req.Name == nil && req.DOB == nil && req.Gender == nil {
				return ErrNoFieldsToUpdate
			}
			return nil
		case FieldName:
			if req.Name == nil {
				return nil
			}
			return validateName(*req.Name)
		case FieldDOB:
			if req.DOB == nil || *req.DOB == "" {
				return nil
			}
			if _, err := ParseDOB(*req.DOB); err != nil {
				return ErrInvalidDOB
			}
			return nil
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	return checkFields(fields, []string{FieldCurrentPassword, FieldNewPassword}, func(f string) error {
		switch f {
		case FieldCurrentPassword:
			return validatePresentPassword(req.CurrentPassword)
		case FieldNewPassword:
			return validateNewPassword(req.NewPassword)
		default:
			return ErrUnknownField
		}
	})
}

func (v *UserValidator) checkEmail(field, email string) error {
	if field != FieldEmail {
		return ErrUnknownField
	}
	return validateEmail(email)
}

// ParseDOB accepts a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp and
// returns the date at UTC midnight.
func ParseDOB(value string) (time.Time, error) {
	if t, err := time.Parse(models.DateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func validateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return ErrInvalidName
	}
	return nil
}

// validateEmail accepts a bare address only, no display name.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validateNewPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

func validatePresentPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// checkFields runs check for every requested field, or for defaults when no
// field was requested, and returns the first failure.
func checkFields(fields, defaults []string, check func(field string) error) error {
	if len(fields) == 0 {
		fields = defaults
	}

	for _, f := range fields {
		if err := check(f); err != nil {
			return err
		}
	}

	return nil
}
