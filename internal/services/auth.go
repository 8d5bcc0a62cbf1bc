package services

//go:generate mockgen -source=auth.go -destination=auth_mock_test.go -package=services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/snake-backend/internal/logger"
	"github.com/sbilibin2017/snake-backend/internal/models"
	"github.com/sbilibin2017/snake-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Password length bounds accepted at signup. bcrypt only hashes the
// first 72 bytes and refuses longer input.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator issues bearer tokens for authenticated users.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles signup, login and current-user lookups.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Signup registers a new user and returns it together with a token.
func (svc *AuthService) Signup(ctx context.Context, username, email, password string) (*models.User, string, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to look up user by email", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, "", ErrEmailTaken
	}

	existing, err = svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to look up user by username", "err", err)
		return nil, "", err
	}
	if existing != nil {
		logger.Log.Infow("username already taken", "username", username)
		return nil, "", ErrUsernameTaken
	}

	if len(password) < MinPasswordLength {
		return nil, "", ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return nil, "", ErrPasswordTooLong
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		var uniqueErr *repositories.UniqueViolationError
		if errors.As(err, &uniqueErr) {
			// lost a race with a concurrent signup
			if strings.Contains(uniqueErr.Constraint, "email") {
				return nil, "", ErrEmailTaken
			}
			return nil, "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.Public(), token, nil
}

// Login authenticates a user by email and password and returns a token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user.Public(), token, nil
}

// Me returns the user with the given id, or nil if it no longer exists.
func (svc *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	return user.Public(), nil
}
