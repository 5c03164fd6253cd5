package models

import "time"

// User represents a journal owner account.
// Sensitive fields (password hash, verification state) are never serialised.
type User struct {
	// UserID is the UUIDv7 identifier assigned by the store on creation.
	UserID string `json:"id"`

	// Email is unique across all users. It is stored exactly as entered.
	Email string `json:"email"`

	// Name is the display name shown in the client.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Verified reports whether the user completed email verification.
	// Unverified users cannot log in.
	Verified bool `json:"-"`

	// DateOfBirth is optional.
	DateOfBirth *time.Time `json:"dob,omitempty"`

	// Gender is optional free text.
	Gender *string `json:"gender,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public view of a user returned by GET /api/auth/me.
type Profile struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	DOB    *string `json:"dob"`
	Gender *string `json:"gender"`
}

// DateLayout is the wire format of the date-of-birth field.
const DateLayout = "2006-01-02"

// NewProfile builds the public profile view of u.
func NewProfile(u User) Profile {
	p := Profile{
		Name:   u.Name,
		Email:  u.Email,
		Gender: u.Gender,
	}
	if u.DateOfBirth != nil {
		dob := u.DateOfBirth.Format(DateLayout)
		p.DOB = &dob
	}

	return p
}
