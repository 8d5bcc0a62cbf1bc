package handlers

//go:generate mockgen -source=me.go -destination=me_mock_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-backend/internal/middlewares"
	"github.com/sbilibin2017/snake-backend/internal/models"
)

// CurrentUserGetter defines the interface that the service must implement.
type CurrentUserGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// MeResponse represents the current user envelope
// swagger:model MeResponse
type MeResponse struct {
	Success bool `json:"success"`
	// Null for anonymous callers
	Data *models.User `json:"data"`
}

// NewMeHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Description Returns the user owning the bearer token, or null data for anonymous callers
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeData(w, nil)
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			writeInternalError(w, err)
			return
		}

		if user == nil {
			writeData(w, nil)
			return
		}
		writeData(w, user)
	}
}
