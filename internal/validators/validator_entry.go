package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/aura/models"
)

const (
	maxMoodLength    = 64
	maxContentLength = 64 * 1024
)

// EntryValidator implements the Validator interface for journal entries.
//
// Accepted types are [models.CreateEntryRequest] and [models.Entry]; for the
// latter only the identifiers are checked.
type EntryValidator struct {
}

// NewEntryValidator constructs a new EntryValidator
// and returns it as the Validator interface.
func NewEntryValidator() Validator {
	return &EntryValidator{}
}

func (v *EntryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateEntryRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateEntryRequest:
		return v.validateCreate(*value, fields...)

	case models.Entry:
		return v.validateEntry(value, fields...)
	case *models.Entry:
		return v.validateEntry(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntryValidator) validateCreate(req models.CreateEntryRequest, fields ...string) error {
	return checkFields(fields, []string{FieldContent, FieldMood}, func(f string) error {
		switch f {
		case FieldContent:
			if req.Content == "" {
				return ErrEmptyContent
			}
			if len(req.Content) > maxContentLength {
				return ErrContentTooLarge
			}
			return nil
		case FieldMood:
			if strings.TrimSpace(req.Mood) == "" {
				return ErrEmptyMood
			}
			if utf8.RuneCountInString(req.Mood) > maxMoodLength {
				return ErrMoodTooLong
			}
			return nil
		default:
			return ErrUnknownField
		}
	})
}

func (v *EntryValidator) validateEntry(entry models.Entry, fields ...string) error {
	return checkFields(fields, []string{FieldEntryID, FieldUserID}, func(f string) error {
		switch f {
		case FieldEntryID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrInvalidEntryID
			}
			return nil
		case FieldUserID:
			if entry.UserID == "" {
				return ErrInvalidUserID
			}
			return nil
		default:
			return ErrUnknownField
		}
	})
}
