package handlers

//go:generate mockgen -source=spectate_game.go -destination=spectate_game_mock_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/services"
)

// GameGetter defines the interface that the spectate service must implement.
type GameGetter interface {
	GetOne(ctx context.Context, id string) (*models.ActiveGame, error)
}

// GameResponse represents a single game envelope
// swagger:model GameResponse
type GameResponse struct {
	Success bool               `json:"success"`
	Data    *models.ActiveGame `json:"data,omitempty"`
	// default: Game not found
	Error string `json:"error,omitempty"`
}

// NewSpectateGameHandler returns an HTTP handler for one active game. Demo
// games advance one step per call.
// @Summary Get active game
// @Tags spectate
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} handlers.GameResponse "Game or not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /spectate/{id} [get]
func NewSpectateGameHandler(svc GameGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		game, err := svc.GetOne(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrGameNotFound) {
				writeFailure(w, http.StatusOK, "Game not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeData(w, game)
	}
}
