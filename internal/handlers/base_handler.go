// Package handlers exposes the services over HTTP
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub/backend/internal/apperrors"
	"github.com/learnhub/backend/internal/middleware"
	"github.com/learnhub/backend/internal/models"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error   string `json:"error" example:"not_found"`
	Message string `json:"message" example:"enrollment not found"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

var errMissingPrincipal = apperrors.New(apperrors.KindUnauthenticated, "authentication required")

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError maps err to its HTTP status and sends the error envelope.
// Unclassified errors are logged and answered with a generic message.
func (h *BaseHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperrors.KindOf(err)
	message := apperrors.MessageOf(err)
	if kind == apperrors.KindInternal {
		h.logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = "internal server error"
	}

	h.respondJSON(w, statusForKind(kind), ErrorResponse{Error: string(kind), Message: message})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into dst
func (h *BaseHandler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   string(apperrors.KindValidation),
				Message: "request body too large",
			})
			return false
		}
		message := "invalid request body"
		if errors.Is(err, io.EOF) {
			message = "request body is required"
		}
		h.respondError(w, r, apperrors.Validation(message))
		return false
	}
	return true
}

// principal extracts the authenticated principal from the request
func (h *BaseHandler) principal(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	p, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.respondError(w, r, errMissingPrincipal)
	}
	return p, ok
}

// pathID parses a positive integer URL parameter
func (h *BaseHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		h.respondError(w, r, apperrors.Validation("invalid "+name))
		return 0, false
	}
	return id, true
}

// pageParams reads page and limit from the query string.
// Missing or malformed values fall back to the defaults.
func pageParams(r *http.Request) (int, int) {
	return queryInt(r, "page", models.DefaultPage), queryInt(r, "limit", models.DefaultLimit)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
