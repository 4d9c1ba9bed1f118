package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.saveProfile").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	saved, err := h.services.ProfileService.SaveProfile(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, "*Handler.saveProfile", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) getUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUserProfile").Send()
		utils.WriteError(w, app.MsgInvalidUser, http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getUserProfile", err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserIDParam
	}
	return userID, nil
}
