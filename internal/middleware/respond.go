package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/learnhub/backend/internal/apperrors"
)

// writeError writes the error envelope used by the handlers
func writeError(w http.ResponseWriter, status int, kind apperrors.Kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   string(kind),
		"message": message,
	})
}
