package handlers

//go:generate mockgen -source=spectate_active.go -destination=spectate_active_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/snake-backend/internal/models"
)

// ActiveGameLister defines the interface that the spectate service must implement.
type ActiveGameLister interface {
	ListActive(ctx context.Context) ([]models.ActiveGame, error)
}

// ActiveGamesResponse represents the active games envelope
// swagger:model ActiveGamesResponse
type ActiveGamesResponse struct {
	Success bool                `json:"success"`
	Data    []models.ActiveGame `json:"data"`
}

// NewSpectateActiveHandler returns an HTTP handler listing every active game.
// @Summary List active games
// @Tags spectate
// @Produce json
// @Success 200 {object} handlers.ActiveGamesResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /spectate/active [get]
func NewSpectateActiveHandler(svc ActiveGameLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := svc.ListActive(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}
		writeData(w, games)
	}
}
