package main

import (
	"fmt"

	"github.com/MKhiriev/calm-companion/internal/adapter"
	"github.com/MKhiriev/calm-companion/internal/client"
	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/internal/store"
	"github.com/MKhiriev/calm-companion/internal/tui"
	"github.com/MKhiriev/calm-companion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewClientLogger("calm-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg, buildInfo, log)
	ui := tui.New(services, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log, localStorage.Close)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
