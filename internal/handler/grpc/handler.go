package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name the backend reports under in addition to the
// server-wide "" entry.
const ServiceName = "calm.companion.Backend"

const (
	defaultCheckInterval = 10 * time.Second
	pingTimeout          = 2 * time.Second
)

// Handler serves the standard gRPC health service. The reported status
// follows the reachability of the store.
type Handler struct {
	health  *health.Server
	checker store.HealthChecker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewHandler(checker store.HealthChecker, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health:  health.NewServer(),
		checker: checker,
		logger:  logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Start checks the store immediately and then every interval until ctx is
// cancelled or Stop is called.
func (h *Handler) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	h.Stop()

	h.mu.Lock()
	watchCtx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		h.Refresh(watchCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-watchCtx.Done():
				return
			case <-t.C:
				h.Refresh(watchCtx)
			}
		}
	}()
}

func (h *Handler) Stop() {
	h.mu.Lock()
	cancel := h.cancel
	h.cancel = nil
	h.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	h.wg.Wait()
}

// Refresh pings the store once and publishes the result.
func (h *Handler) Refresh(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.checker.Ping(pingCtx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Refresh").Msg("store is unreachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// Shutdown stops the watcher and reports NOT_SERVING to every watcher
// until the process exits.
func (h *Handler) Shutdown() {
	h.Stop()
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
