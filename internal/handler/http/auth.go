package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/aura/internal/app"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/models"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 1 << 20

// decodeJSON reads the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst); err != nil {
		logger.FromRequest(r).Info().AnErr("reason", err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidInput, http.StatusBadRequest)
		return false
	}

	return true
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgRegistrationFailed)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{Message: app.MsgUserCreated, UserID: user.UserID}, http.StatusCreated)
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.AuthService.VerifyEmail(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgVerificationFailed)
		return
	}

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.SessionResponse{
		Message: app.MsgEmailVerified,
		User:    models.SessionUser{Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgLoginFailed)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.UserID).Msg("user logged in")

	h.setSessionCookie(w, token)
	utils.WriteJSON(w, models.SessionResponse{
		Message: app.MsgLoginSuccessful,
		User:    models.SessionUser{Name: user.Name, Email: user.Email},
	}, http.StatusOK)
}

// logout only clears the cookie. Issued tokens stay valid until they expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.PasswordResetService.ForgotPassword(r.Context(), req); err != nil {
		writeServiceError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	utils.WriteMessage(w, app.MsgResetLinkSent, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.PasswordResetService.ResetPassword(r.Context(), req); err != nil {
		writeServiceError(w, r, err, app.MsgPasswordResetFailed)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordReset, http.StatusOK)
}
