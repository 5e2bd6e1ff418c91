package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type AuthService interface {
	ParseSessionToken(token string) (entity.Identity, error)
}

type Middleware struct {
	auth         AuthService
	exposeErrors bool
}

func NewMiddleware(auth AuthService, exposeErrors bool) *Middleware {
	return &Middleware{
		auth:         auth,
		exposeErrors: exposeErrors,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), requestID)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetLogType(ctx, "webrequest")
		ctx = logger.SetIP(ctx, entity.IPFromCtx(ctx))

		w.Header().Set("X-Request-Id", requestID)

		slog.InfoContext(ctx, "incoming request", "user_agent", r.UserAgent())

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		slog.InfoContext(ctx, "request completed",
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec != nil {
				slog.ErrorContext(ctx, "panic", "error", rec, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), errInternalText, m.exposeErrors)
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// tokens are sent in the Authorization header, cookies are never allowed
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			for _, part := range strings.Split(forwarded, ",") {
				part = removePort(strings.TrimSpace(part))
				if net.ParseIP(part) != nil {
					ip = part
					break
				}
			}
		}

		if realIP := removePort(r.Header.Get("X-Real-IP")); net.ParseIP(realIP) != nil {
			ip = realIP
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth verifies the bearer token and stores the caller identity in the request context.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Access token missing", m.exposeErrors)
			return
		}

		id, err := m.auth.ParseSessionToken(token)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, entity.ErrTokenExpired) {
				msg = "Token expired"
			}

			SendErr(ctx, w, http.StatusUnauthorized, err, msg, m.exposeErrors)

			return
		}

		ctx = logger.SetUserID(ctx, id.IDString())
		ctx = logger.SetRole(ctx, string(id.Role))
		ctx = entity.SetIdentityToContext(ctx, id)
		ctx = entity.SetTokenToContext(ctx, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects callers whose role is not listed. It must run after Auth.
func (m *Middleware) RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := entity.IdentityFromContext(ctx)
			if err != nil {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Unauthorized", m.exposeErrors)
				return
			}

			if !id.HasRole(roles...) {
				SendErr(ctx, w, http.StatusForbidden, fmt.Errorf("role %s: %w", id.Role, entity.ErrForbidden),
					"Access denied", m.exposeErrors)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
