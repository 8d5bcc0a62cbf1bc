package handlers

//go:generate mockgen -source=leaderboard_submit.go -destination=leaderboard_submit_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/services"
)

// ScoreSubmitter defines the interface that the leaderboard service must implement.
type ScoreSubmitter interface {
	Submit(ctx context.Context, username string, score int, mode models.GameMode) (*models.LeaderboardEntry, error)
}

// SubmitScoreRequest represents the JSON body for a score submission
// swagger:model SubmitScoreRequest
type SubmitScoreRequest struct {
	// required: true
	// default: SnakeMaster
	Username string `json:"username"`

	// Non-negative score
	// required: true
	// default: 250
	Score int `json:"score"`

	// required: true
	// default: walls
	GameMode models.GameMode `json:"gameMode"`
}

// SubmitScoreResponse represents the accepted entry envelope
// swagger:model SubmitScoreResponse
type SubmitScoreResponse struct {
	Success bool                     `json:"success"`
	Data    *models.LeaderboardEntry `json:"data"`
}

// NewLeaderboardSubmitHandler returns an HTTP handler appending a score.
// @Summary Submit score
// @Description Appends a new leaderboard entry. Earlier entries of the same user are kept.
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param submitScoreRequest body handlers.SubmitScoreRequest true "Score"
// @Success 200 {object} handlers.SubmitScoreResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid score, game mode or username"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /leaderboard [post]
func NewLeaderboardSubmitHandler(svc ScoreSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitScoreRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, invalidRequestBody)
			return
		}

		mode, err := models.ParseGameMode(string(req.GameMode))
		if err != nil {
			writeFailure(w, http.StatusBadRequest, services.ErrInvalidGameMode.Error())
			return
		}

		entry, err := svc.Submit(r.Context(), req.Username, req.Score, mode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidScore),
				errors.Is(err, services.ErrInvalidGameMode),
				errors.Is(err, services.ErrInvalidUsername):
				writeFailure(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, entry)
	}
}
