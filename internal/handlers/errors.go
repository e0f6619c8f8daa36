package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

const timestampLayout = "2006-01-02T15:04:05.000Z"

// writeError writes the error envelope shared by every failed request.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, errs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Success:    false,
		StatusCode: status,
		Message:    message,
		Errors:     errs,
		Timestamp:  time.Now().UTC().Format(timestampLayout),
		Path:       r.URL.Path,
	})
}

// NewNotFoundHandler answers unknown routes and unsupported methods with 404.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path), nil)
	}
}
