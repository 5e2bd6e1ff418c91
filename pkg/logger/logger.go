package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const originService = "itams"

type ctxKey uint8

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUserID
	ctxKeyRole
	ctxKeyIP
	ctxKeyLogType
	ctxKeyMethod
	ctxKeyURL
	ctxKeyLogger
)

// ctxFields are copied from the context into every record when set.
var ctxFields = []struct {
	key  ctxKey
	name string
}{
	{ctxKeyRequestID, "request_id"},
	{ctxKeyRole, "role"},
	{ctxKeyIP, "ip"},
	{ctxKeyLogType, "type"},
	{ctxKeyMethod, "method"},
	{ctxKeyURL, "url"},
}

type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	// user_id is always present, null for anonymous requests
	if v, ok := ctx.Value(ctxKeyUserID).(string); ok && v != "" {
		record.AddAttrs(slog.String("user_id", v))
	} else {
		record.AddAttrs(slog.Any("user_id", nil))
	}

	for _, f := range ctxFields {
		if v, ok := ctx.Value(f.key).(string); ok && v != "" {
			record.AddAttrs(slog.String(f.name, v))
		}
	}

	record.AddAttrs(slog.String("origin_service", originService))

	return h.Handler.Handle(ctx, record)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}

func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&Handler{
		Handler: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	})
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func FromContext(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(ctxKeyLogger).(*slog.Logger)
	if !ok {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return log
}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, l)
}

func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, reqID)
}

func RequestIDFromCtx(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func SetRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, ctxKeyRole, role)
}

func SetIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIP, ip)
}

func SetLogType(ctx context.Context, logType string) context.Context {
	return context.WithValue(ctx, ctxKeyLogType, logType)
}

func SetMethod(ctx context.Context, method string) context.Context {
	return context.WithValue(ctx, ctxKeyMethod, method)
}

func SetURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, ctxKeyURL, url)
}
