package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock_test.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, string, error)
}

// SignupRequest represents the JSON body for user registration
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: SnakeMaster
	Username string `json:"username"`

	// Email
	// required: true
	// default: snake@game.com
	Email string `json:"email"`

	// Password, at least 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthData is the payload of a successful signup or login
// swagger:model AuthData
type AuthData struct {
	User *models.User `json:"user"`

	// Bearer token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// AuthResponse represents the signup and login envelope
// swagger:model AuthResponse
type AuthResponse struct {
	Success bool      `json:"success"`
	Data    *AuthData `json:"data,omitempty"`
	// default: Email already registered
	Error string `json:"error,omitempty"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account and returns it with a bearer token. Duplicate email, duplicate username and short passwords are reported with success=false.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup Request"
// @Success 200 {object} handlers.AuthResponse "User registered or domain failure"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFailure(w, http.StatusBadRequest, invalidRequestBody)
			return
		}

		if strings.TrimSpace(req.Username) == "" {
			writeFailure(w, http.StatusBadRequest, "username is required")
			return
		}

		if !validEmail(req.Email) {
			writeFailure(w, http.StatusBadRequest, "invalid email address")
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailTaken):
				writeFailure(w, http.StatusOK, "Email already registered")
			case errors.Is(err, services.ErrUsernameTaken):
				writeFailure(w, http.StatusOK, "Username already taken")
			case errors.Is(err, services.ErrPasswordTooShort):
				writeFailure(w, http.StatusOK, "Password must be at least 6 characters")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeFailure(w, http.StatusOK, "Password must be at most 72 bytes")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeData(w, AuthData{User: user, Token: token})
	}
}

// validEmail accepts bare addresses only, without display names.
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
