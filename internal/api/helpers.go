package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
)

const errInternalText = "Internal Server Error"

type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ResponseError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SendErr logs err and writes the failure envelope. The error detail is only written for
// server errors and only when expose is set.
func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string, expose bool) {
	slog.ErrorContext(ctx, "api error", "error", err, "code", code)

	resp := ResponseError{Message: msg}

	if code >= http.StatusInternalServerError && expose && err != nil {
		resp.Error = err.Error()
	}

	writeJSON(ctx, w, code, resp)
}

// SendJSON wraps data into the success envelope.
func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	writeJSON(ctx, w, code, Response{Success: true, Data: data})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// errorStatus maps service errors to the HTTP status and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, entity.ErrTokenExpired):
		return http.StatusUnauthorized, "Token expired"
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, entity.ErrAlreadyExists):
		return http.StatusBadRequest, "Already exists"
	case entity.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, errInternalText
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	err := dec.Decode(v)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrIncorrectBody, err)
	}

	return nil
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer: %w", name, entity.ErrValidation)
	}

	return id, nil
}

func intQuery(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, entity.ErrValidation)
	}

	return n, nil
}
