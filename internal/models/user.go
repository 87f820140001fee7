package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never the plaintext
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// User is the public view of a user returned by the API.
// swagger:model User
type User struct {
	// User ID
	ID uuid.UUID `json:"id"`

	// Email
	// example: john@example.com
	Email string `json:"email"`
}

// Public converts a database row to its API representation.
func (u *UserDB) Public() User {
	return User{ID: u.UserID, Email: u.Email}
}
