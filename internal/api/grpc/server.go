package grpc

import (
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"rentdesk-backoffice/internal/api/grpc/interceptor"
	"rentdesk-backoffice/internal/security"
)

// NewServer builds the gRPC server carrying the health service and reflection.
// A nil token manager disables the auth interceptor.
func NewServer(monitor *HealthMonitor, tokens security.TokenManager) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{interceptor.LoggingUnary()}
	if tokens != nil {
		interceptors = append(interceptors, interceptor.NewAuthInterceptor(tokens).Unary())
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	healthpb.RegisterHealthServer(s, monitor.Server())

	// Register reflection service for grpcurl
	reflection.Register(s)
	return s
}
