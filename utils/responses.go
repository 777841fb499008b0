// fleetdesk/utils/responses.go
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

var responseLogger = zap.NewNop()

// SetLogger sets the logger used for response errors.
func SetLogger(l *zap.Logger) {
	if l != nil {
		responseLogger = l.Named("response")
	}
}

type APIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Path  string `json:"path,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		responseLogger.Error("encoding JSON response", zap.Error(err))
	}
}

func WriteJSONError(w http.ResponseWriter, status int, format string, args ...interface{}) {
	errMsg := fmt.Sprintf(format, args...)
	responseLogger.Warn("request failed", zap.Int("status", status), zap.String("error", errMsg))
	WriteJSON(w, status, APIResponse{OK: false, Error: errMsg})
}
