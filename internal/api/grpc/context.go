package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GetStaffIDFromContext extracts the authenticated staff id set by the auth interceptor.
// It expects a header named "staff-id".
func GetStaffIDFromContext(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	ids := md.Get("staff-id")
	if len(ids) == 0 || ids[0] == "" {
		return "", status.Errorf(codes.Unauthenticated, "staff_id is not provided in metadata")
	}
	return ids[0], nil
}
