package handlers

//go:generate mockgen -source=root.go -destination=root_mock_test.go -package=handlers

import (
	"context"
	"net/http"
)

// Pinger checks connectivity to a backing store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RootResponse is the welcome message
// swagger:model RootResponse
type RootResponse struct {
	// default: Welcome to Nokia Nostalgia Snake API
	Message string `json:"message"`
}

// NewRootHandler returns the welcome handler.
// @Summary Welcome
// @Tags health
// @Produce json
// @Success 200 {object} handlers.RootResponse
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RootResponse{Message: "Welcome to Nokia Nostalgia Snake API"})
	}
}

// NewHealthHandler returns a readiness probe backed by the database.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.Response
// @Failure 503 {object} handlers.ErrorResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			writeFailure(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		writeData(w, nil)
	}
}
