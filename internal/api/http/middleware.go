package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rentdesk-backoffice/internal/logger"
	"rentdesk-backoffice/internal/security"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type staffKey struct{}

// StaffFromContext returns the claims of the authenticated caller, if any
func StaffFromContext(ctx context.Context) (*security.StaffClaims, bool) {
	claims, ok := ctx.Value(staffKey{}).(*security.StaffClaims)
	return claims, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestID tags every request with an id, echoes it back and logs the outcome
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := logger.WithRequestID(r.Context(), id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.DebugContext(ctx, "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type authMiddleware struct {
	tokens security.TokenManager
}

func (m *authMiddleware) handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authorization token is not provided"})
			return
		}
		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			logger.WarnContext(r.Context(), "Rejected bearer token", "path", r.URL.Path, "error", err)
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}
		ctx := context.WithValue(r.Context(), staffKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
