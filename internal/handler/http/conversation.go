package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

func (h *Handler) saveConversationEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req models.SaveEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveConversationEntries").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.ConversationService.SaveEntries(r.Context(), userID, req.Entries); err != nil {
		writeServiceError(w, r, "*Handler.saveConversationEntries", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) getConversationEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	entries, err := h.services.ConversationService.GetHistory(r.Context(), userID, r.URL.Query().Get("locale"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getConversationEntries", err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
