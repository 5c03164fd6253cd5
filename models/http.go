package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyEmailRequest is the body of POST /api/auth/verify-email.
type VerifyEmailRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the body of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/auth/me.
// Nil fields are left untouched; an empty DOB or Gender clears the value.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty"`
	DOB    *string `json:"dob,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// DeleteAccountRequest is the body of POST /api/auth/delete-account.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// CreateEntryRequest is the body of POST /api/entries.
type CreateEntryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}
