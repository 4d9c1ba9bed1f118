package service

import (
	"context"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/models"
)

type appInfoService struct {
	version models.VersionInfo

	logger *logger.Logger
}

// NewAppInfoService reports the build info the binary was linked with.
// Unset fields are reported as "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		version: buildInfo.ToVersionInfo(),
		logger:  logger,
	}
}

func (s *appInfoService) GetVersion(ctx context.Context) models.VersionInfo {
	return s.version
}
