package http

import (
	"net/http"

	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

func (h *Handler) getStaticMessage(w http.ResponseWriter, r *http.Request) {
	msg := h.services.MessageService.StaticMessage(r.Context())
	utils.WriteJSON(w, models.StaticMessageResponse{Message: msg}, http.StatusOK)
}

func (h *Handler) getStaticAssistantMessage(w http.ResponseWriter, r *http.Request) {
	msg := h.services.MessageService.StaticAssistantMessage(r.Context())
	utils.WriteJSON(w, models.StaticMessageResponse{Message: msg}, http.StatusOK)
}

func (h *Handler) getSupportedLocales(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.LocaleService.SupportedLocales(r.Context()), http.StatusOK)
}

func (h *Handler) getCurrentLocale(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	locale, err := h.services.LocaleService.CurrentLocale(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getCurrentLocale", err)
		return
	}

	utils.WriteJSON(w, locale, http.StatusOK)
}
