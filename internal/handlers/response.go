package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
)

const (
	internalServerError = "Internal server error"
	invalidRequestBody  = "invalid request body"
)

// ErrorResponse represents a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	// default: false
	Success bool `json:"success"`

	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// writeJSON encodes body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeData answers 200 with a successful envelope.
func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, models.Response{Success: true, Data: data})
}

// writeFailure answers with a failed envelope. Domain failures use 200.
func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.Response{Success: false, Error: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeFailure(w, http.StatusInternalServerError, internalServerError)
}
