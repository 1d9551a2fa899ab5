package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"rentdesk-backoffice/internal/logger"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthMonitor publishes SERVING while the database answers pings and NOT_SERVING otherwise.
// The status applies to the empty service name, which is what probes ask for.
type HealthMonitor struct {
	server   *health.Server
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration
}

func NewHealthMonitor(pinger Pinger, interval time.Duration) *HealthMonitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthMonitor{
		server:   hs,
		pinger:   pinger,
		interval: interval,
		timeout:  2 * time.Second,
	}
}

// Server is the grpc_health_v1 implementation to register
func (m *HealthMonitor) Server() *health.Server {
	return m.server
}

// Check pings once and updates the published status
func (m *HealthMonitor) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := m.pinger.Ping(ctx); err != nil {
		logger.Warn("Database ping failed", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	m.server.SetServingStatus("", st)
	return st
}

// Run checks on every interval until ctx is done, then marks the server as shutting down
func (m *HealthMonitor) Run(ctx context.Context) {
	m.Check(ctx)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}
