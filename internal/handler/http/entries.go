package http

import (
	"net/http"

	"github.com/MKhiriev/aura/internal/app"
	"github.com/MKhiriev/aura/internal/utils"
	"github.com/MKhiriev/aura/models"
	"github.com/go-chi/chi/v5"
)

// createEntry answers with the stored record, whose content is the
// ciphertext. Clients re-read the list to show plaintext.
func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	entry, err := h.services.EntryService.Create(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToSaveEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	entries, err := h.services.EntryService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToFetchEntries)
		return
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.services.EntryService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, app.MsgFailedToFetchEntry)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.EntryService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, app.MsgFailedToDeleteEntry)
		return
	}

	utils.WriteMessage(w, app.MsgEntryDeleted, http.StatusOK)
}
