// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// aura server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. Keeping them in one place keeps the wording the web
// client depends on consistent throughout the API.
package app

// Success messages.
const (
	MsgBreathing       = "🟢 Aura Backend is Breathing..."
	MsgUserCreated     = "User created"
	MsgEmailVerified   = "Email verified"
	MsgLoginSuccessful = "Login successful"
	MsgLoggedOut       = "Logged out"
	MsgProfileUpdated  = "Profile updated"
	MsgPasswordChanged = "Password changed"
	MsgAccountDeleted  = "Account deleted"
	MsgEntryDeleted    = "Entry deleted"

	// MsgResetLinkSent is returned by forgot-password whether or not the
	// email belongs to an account.
	MsgResetLinkSent = "If that email is registered, a reset link has been sent"

	// MsgPasswordReset is returned after a successful password reset.
	MsgPasswordReset = "Password has been reset"
)

// Error messages.
const (
	// MsgInvalidInput is returned when the request body cannot be decoded
	// or fails validation without a more specific reason.
	MsgInvalidInput = "Invalid input"

	// MsgAccessDeniedLogin is returned by the auth middleware when the
	// session cookie is missing.
	MsgAccessDeniedLogin = "Access denied. Please login."

	// MsgInvalidToken is returned when the session cookie holds an expired
	// or forged token.
	MsgInvalidToken = "Invalid token"

	MsgUnauthorized             = "Unauthorized"
	MsgForbidden                = "Forbidden"
	MsgUserAlreadyExists        = "User already exists"
	MsgInvalidCredentials       = "Invalid credentials"
	MsgEmailNotVerified         = "Please verify your email before logging in"
	MsgAlreadyVerified          = "Email is already verified"
	MsgInvalidOrExpiredOTP      = "Invalid or expired verification code"
	MsgInvalidOrExpiredToken    = "Invalid or expired reset token"
	MsgIncorrectCurrentPassword = "Current password is incorrect"
	MsgIncorrectPassword        = "Incorrect password"
	MsgUserNotFound             = "User not found"
	MsgEntryNotFound            = "Entry not found"

	// Fallbacks for unexpected failures per operation.
	MsgRegistrationFailed   = "Registration failed"
	MsgVerificationFailed   = "Verification failed"
	MsgLoginFailed          = "Login failed"
	MsgPasswordResetFailed  = "Password reset failed"
	MsgProfileFailed        = "Failed to load profile"
	MsgProfileUpdateFailed  = "Failed to update profile"
	MsgPasswordChangeFailed = "Failed to change password"
	MsgAccountDeleteFailed  = "Failed to delete account"
	MsgFailedToSaveEntry    = "Failed to save entry"
	MsgFailedToFetchEntries = "Failed to fetch entries"
	MsgFailedToFetchEntry   = "Failed to fetch entry"
	MsgFailedToDeleteEntry  = "Failed to delete entry"
)
