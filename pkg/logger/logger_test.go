package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, test := range tests {
		test := test
		t.Run(test.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.want, logger.ParseLevel(test.in))
		})
	}
}

func TestHandler_ContextFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := logger.NewWithWriter(&buf, slog.LevelDebug)

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "42")
	ctx = logger.SetRole(ctx, "ADMIN")
	ctx = logger.SetIP(ctx, "10.0.0.1")

	l.With("component", "test").InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, "42", rec["user_id"])
	require.Equal(t, "ADMIN", rec["role"])
	require.Equal(t, "10.0.0.1", rec["ip"])
	require.Equal(t, "itams", rec["origin_service"])
	require.Equal(t, "test", rec["component"])
}

func TestHandler_AnonymousUser(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger.NewWithWriter(&buf, slog.LevelInfo).InfoContext(context.Background(), "anon")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	v, ok := rec["user_id"]
	require.True(t, ok)
	require.Nil(t, v)
}
