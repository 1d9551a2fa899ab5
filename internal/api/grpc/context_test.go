package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestGetStaffIDFromContext(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("staff-id", "staff-1"))
		id, err := GetStaffIDFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, "staff-1", id)
	})

	t.Run("NoMetadata", func(t *testing.T) {
		_, err := GetStaffIDFromContext(context.Background())
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("NoStaffID", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("other", "x"))
		_, err := GetStaffIDFromContext(ctx)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}
