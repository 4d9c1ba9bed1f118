package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/calm-companion/internal/app"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/internal/validators"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: the specific validation reasons come before
// the ErrInvalidDataProvided they are wrapped in.
var errorResponses = []errorResponse{
	{validators.ErrEmptyName, http.StatusBadRequest, app.MsgEmptyName},
	{validators.ErrUnknownLanguage, http.StatusBadRequest, app.MsgUnknownLanguage},
	{service.ErrUnknownLanguage, http.StatusBadRequest, app.MsgUnknownLanguage},
	{validators.ErrInvalidRole, http.StatusBadRequest, app.MsgInvalidRole},
	{service.ErrInvalidRole, http.StatusBadRequest, app.MsgInvalidRole},
	{validators.ErrInvalidUserID, http.StatusBadRequest, app.MsgInvalidUser},
	{validators.ErrEmptyText, http.StatusBadRequest, app.MsgEmptyText},
	{validators.ErrTextTooLarge, http.StatusBadRequest, app.MsgTextTooLarge},
	{validators.ErrEmptyEntries, http.StatusBadRequest, app.MsgNoEntriesProvided},
	{store.ErrNoEntries, http.StatusBadRequest, app.MsgNoEntriesProvided},
	{validators.ErrInvalidSender, http.StatusBadRequest, app.MsgInvalidSender},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrLoginTaken, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},

	{store.ErrTransient, http.StatusInternalServerError, app.MsgStorageUnavailable},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the matching {"error": ...} envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	utils.WriteError(w, message, status)
}
