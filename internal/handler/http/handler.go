package http

import (
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
)

// Handler serves the REST API on top of the backend services.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Str("func", "http.NewHandler").Msg("REST handler ready")
	return &Handler{services: services, logger: logger}
}
