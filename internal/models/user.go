package models

import "time"

// User is an account identified by its email address. Only the bcrypt hash of
// the password is ever stored.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Hide from JSON responses
	CreatedAt    time.Time `json:"created_at"`
}
