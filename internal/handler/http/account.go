package http

import (
	"net/http"

	"github.com/MKhiriev/aura/internal/app"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := h.services.AccountService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgProfileFailed)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.services.AccountService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgProfileUpdateFailed)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AccountService.ChangePassword(r.Context(), userID, req); err != nil {
		writeServiceError(w, r, err, app.MsgPasswordChangeFailed)
		return
	}

	utils.WriteMessage(w, app.MsgPasswordChanged, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.DeleteAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.AccountService.DeleteAccount(r.Context(), userID, req); err != nil {
		writeServiceError(w, r, err, app.MsgAccountDeleteFailed)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgAccountDeleted, http.StatusOK)
}
