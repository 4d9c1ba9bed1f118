package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/calm-companion/internal/logger"
	"github.com/MKhiriev/calm-companion/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func checkStatus(t *testing.T, h *Handler, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := NewHandler(mock.NewMockHealthChecker(gomock.NewController(t)), logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}

func TestHandler_Refresh(t *testing.T) {
	checker := mock.NewMockHealthChecker(gomock.NewController(t))
	h := NewHandler(checker, logger.Nop())

	checker.EXPECT().Ping(gomock.Any()).Return(nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, h.Refresh(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ServiceName))

	checker.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, h.Refresh(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestHandler_StartStop(t *testing.T) {
	checker := mock.NewMockHealthChecker(gomock.NewController(t))
	checker.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)
	h := NewHandler(checker, logger.Nop())

	h.Start(context.Background(), 5*time.Millisecond)
	assert.Eventually(t, func() bool {
		return checkStatus(t, h, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	h.Stop()
	assert.NotPanics(t, h.Stop)
}

func TestHandler_Shutdown(t *testing.T) {
	checker := mock.NewMockHealthChecker(gomock.NewController(t))
	checker.EXPECT().Ping(gomock.Any()).Return(nil).AnyTimes()
	h := NewHandler(checker, logger.Nop())
	h.Refresh(context.Background())

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}
