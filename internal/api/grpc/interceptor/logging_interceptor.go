package interceptor

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"rentdesk-backoffice/internal/logger"
)

// LoggingUnary logs every unary RPC with its status code and duration
func LoggingUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		if err != nil {
			logger.Warn("gRPC call failed", append(args, "error", err)...)
		} else {
			logger.Debug("gRPC call", args...)
		}
		return resp, err
	}
}
