package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

func (h *Handler) getMyRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	role, err := h.services.RoleService.GetRole(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getMyRole", err)
		return
	}

	utils.WriteJSON(w, models.RoleResponse{Role: role, IsAdmin: role == models.RoleAdmin}, http.StatusOK)
}

func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, err := userIDParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.assignRole").Send()
		utils.WriteError(w, app.MsgInvalidUser, http.StatusBadRequest)
		return
	}

	var req models.AssignRoleRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.assignRole").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err = h.services.RoleService.AssignRole(r.Context(), userID, req.Role); err != nil {
		writeServiceError(w, r, "*Handler.assignRole", err)
		return
	}

	log.Info().Int64("user_id", userID).Str("role", string(req.Role)).Msg("role assigned")
	w.WriteHeader(http.StatusNoContent)
}
