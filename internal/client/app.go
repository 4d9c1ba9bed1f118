package client

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/calm-companion/internal/config"
	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/service"
	"github.com/MKhiriev/calm-companion/internal/workers"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	closers  []func() error

	logger *logger.Logger
}

// NewApp wires the UI and the background jobs. closers run, in order, after
// the UI has exited and the jobs have stopped.
func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, logger *logger.Logger, closers ...func() error) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNotConfigured
	}

	jobs := workers.NewWorkers(logger)
	if cfg.JournalEnabled && services.Journal != nil {
		jobs.Add("journal", services.Journal, cfg.JournalFlushInterval)
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  jobs,
		closers:  closers,
		logger:   logger,
	}, nil
}

// Run starts the background jobs, shows the UI until the user quits, then
// stops the jobs (flushing the journal) and releases resources. Quitting
// with Ctrl+C is not an error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	a.workers.Start(ctx)
	a.logger.Info().Int("jobs", a.workers.Len()).Msg("client started")

	err := a.ui.Run(ctx)

	a.workers.Stop()
	for _, closeFn := range a.closers {
		if cerr := closeFn(); cerr != nil {
			a.logger.Err(cerr).Msg("close client resource")
		}
	}

	if err != nil && !errors.Is(err, ErrUserQuit) {
		return err
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
