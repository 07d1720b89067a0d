package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jeremyjsx/blogapi/internal/blog"
	"github.com/jeremyjsx/blogapi/internal/middleware"
	"github.com/jeremyjsx/blogapi/internal/pagination"
)

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	writeJSON(w, status, map[string]any{
		"error": APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// respondError maps err onto an HTTP error response and returns the status
// written. Unexpected errors are logged and reported without detail.
func respondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) int {
	var (
		notFound *blog.NotFoundError
		invalid  blog.ValidationErrors
	)
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", notFound.Error(), nil)
		return http.StatusNotFound
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", invalid.Fields())
		return http.StatusBadRequest
	case errors.Is(err, blog.ErrConflict):
		writeError(w, http.StatusConflict, "CONFLICT", "a record with the same name already exists", nil)
		return http.StatusConflict
	case errors.Is(err, pagination.ErrPageOutOfRange):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return http.StatusNotFound
	case errors.Is(err, pagination.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
		return http.StatusBadRequest
	}
	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetRequestID(r.Context()),
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
	return http.StatusInternalServerError
}
