package models

// MessageResponse is the generic success body: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterResponse is returned with 201 after a registration attempt.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// SessionUser is the short user summary returned on login and verification.
type SessionUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse is returned when a session cookie has been set.
type SessionResponse struct {
	Message string      `json:"message"`
	User    SessionUser `json:"user"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Message string `json:"message"`
}
