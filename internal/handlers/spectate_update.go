package handlers

//go:generate mockgen -source=spectate_update.go -destination=spectate_update_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/services"
)

// UpdatePusher defines the interface that the spectate service must implement.
type UpdatePusher interface {
	PushUpdate(ctx context.Context, update models.GameUpdate) error
}

// GameUpdateRequest represents the JSON body of a live game snapshot
// swagger:model GameUpdateRequest
type GameUpdateRequest struct {
	// required: true
	// default: SnakeMaster
	Username string `json:"username"`

	// default: 30
	Score int `json:"score"`

	// required: true
	// default: pass-through
	GameMode models.GameMode `json:"gameMode"`

	// Head first, must not be empty
	// required: true
	Snake []models.Segment `json:"snake"`

	// required: true
	Food models.Position `json:"food"`
}

// NewSpectateUpdateHandler returns an HTTP handler storing a live game snapshot.
// @Summary Push live game state
// @Description Creates or replaces the caller's live game. Demo games cannot be overwritten.
// @Tags spectate
// @Accept json
// @Produce json
// @Param gameUpdateRequest body handlers.GameUpdateRequest true "Snapshot"
// @Success 200 {object} models.Response "Stored or demo game"
// @Failure 400 {object} handlers.ErrorResponse "Invalid game mode, username or snake"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /spectate/update [post]
func NewSpectateUpdateHandler(svc UpdatePusher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GameUpdateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, invalidRequestBody)
			return
		}

		if strings.TrimSpace(req.Username) == "" {
			writeFailure(w, http.StatusBadRequest, services.ErrInvalidUsername.Error())
			return
		}

		err := svc.PushUpdate(r.Context(), models.GameUpdate{
			Username: req.Username,
			Score:    req.Score,
			GameMode: req.GameMode,
			Snake:    req.Snake,
			Food:     req.Food,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrDemoGame):
				writeFailure(w, http.StatusOK, "Game is a demo game")
			case errors.Is(err, services.ErrInvalidGameMode),
				errors.Is(err, services.ErrEmptySnake):
				writeFailure(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, nil)
	}
}
