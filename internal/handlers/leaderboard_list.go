package handlers

//go:generate mockgen -source=leaderboard_list.go -destination=leaderboard_list_mock_test.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/services"
)

// LeaderboardLister defines the interface that the leaderboard service must implement.
type LeaderboardLister interface {
	List(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
}

// LeaderboardResponse represents the ranked leaderboard envelope
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	Success bool                      `json:"success"`
	Data    []models.LeaderboardEntry `json:"data"`
}

// NewLeaderboardListHandler returns an HTTP handler listing scores ranked by
// score descending, ties in submission order.
// @Summary Get leaderboard
// @Tags leaderboard
// @Produce json
// @Param gameMode query string false "Filter by game mode" Enums(pass-through, walls)
// @Success 200 {object} handlers.LeaderboardResponse
// @Failure 400 {object} handlers.ErrorResponse "Unknown game mode"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardListHandler(svc LeaderboardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var mode *models.GameMode
		if raw := r.URL.Query().Get("gameMode"); raw != "" {
			m, err := models.ParseGameMode(raw)
			if err != nil {
				writeFailure(w, http.StatusBadRequest, services.ErrInvalidGameMode.Error())
				return
			}
			mode = &m
		}

		entries, err := svc.List(r.Context(), mode)
		if err != nil {
			if errors.Is(err, services.ErrInvalidGameMode) {
				writeFailure(w, http.StatusBadRequest, err.Error())
				return
			}
			writeInternalError(w, err)
			return
		}

		writeData(w, entries)
	}
}
