package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

func (h *Handler) analyzeSentiment(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r, "*Handler.analyzeSentiment")
	if !ok {
		return
	}

	result, err := h.services.AnalysisService.AnalyzeSentiment(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, r, "*Handler.analyzeSentiment", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) detectLanguage(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTextRequest(w, r, "*Handler.detectLanguage")
	if !ok {
		return
	}

	language, err := h.services.AnalysisService.DetectLanguage(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, r, "*Handler.detectLanguage", err)
		return
	}

	utils.WriteJSON(w, models.LanguageResponse{Language: language}, http.StatusOK)
}

func (h *Handler) sentenceCase(w http.ResponseWriter, r *http.Request) {
	h.transformText(w, r, "*Handler.sentenceCase", h.services.TextService.SentenceCase)
}

func (h *Handler) trimText(w http.ResponseWriter, r *http.Request) {
	h.transformText(w, r, "*Handler.trimText", h.services.TextService.Trim)
}

func (h *Handler) transformText(w http.ResponseWriter, r *http.Request, funcName string,
	transform func(context.Context, string) (string, error)) {
	req, ok := decodeTextRequest(w, r, funcName)
	if !ok {
		return
	}

	text, err := transform(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, models.TextResponse{Text: text}, http.StatusOK)
}

func decodeTextRequest(w http.ResponseWriter, r *http.Request, funcName string) (models.TextRequest, bool) {
	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.TextRequest{}, false
	}
	return req, true
}
