package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

// LoggingRoundTripper logs outgoing requests and forwards the request id.
type LoggingRoundTripper struct {
	Transport http.RoundTripper
}

func NewLoggingRoundTripper(transport http.RoundTripper) *LoggingRoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &LoggingRoundTripper{Transport: transport}
}

func (l *LoggingRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	request := fmt.Sprintf("%s %s", r.Method, r.URL.Redacted())
	start := time.Now()

	slog.InfoContext(ctx, "outgoing request", "request", request)

	resp, err := l.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", request,
		"status", resp.StatusCode,
		"duration", time.Since(start).String(),
	)

	return resp, nil
}
