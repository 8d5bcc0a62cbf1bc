package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // Bcrypt hash of the password
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public view of a user returned by the API.
// swagger:model User
type User struct {
	// example: 6f1c1f0e-0d7c-4c5e-9a57-3c1d4a2b9e10
	ID string `json:"id"`
	// example: SnakeMaster
	Username string `json:"username"`
	// example: snake@game.com
	Email string `json:"email"`
}

// Public strips the password hash and timestamps from the record.
func (u *UserDB) Public() *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:       u.UserID.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}
