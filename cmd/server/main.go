package main

import (
	"context"

	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/handler"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/server"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/utils"
	"github.com/MKhiriev/calm-companion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("calm-server")
	log.Info().Str("build", buildInfo.String()).Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	utils.InitHasherPool(cfg.App.HashKey)

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, buildInfo, log)

	handlers, err := handler.NewHandlers(services, storages, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
