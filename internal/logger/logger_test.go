package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestRequestScopedLogger(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "info", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	ctx := WithRequestID(context.Background(), "req-42")
	InfoContext(ctx, "contract created", "contract_id", "c-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contract created", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "c-1", entry["contract_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "warn", "text")
	t.Cleanup(func() { Initialize("info", "text") })

	Info("hidden")
	EnterMethod("svc.Method")
	Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "Method entered")
	assert.Contains(t, out, "shown")
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Get(), FromContext(context.Background()))
}
