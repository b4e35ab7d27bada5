package domain

import (
	"errors"
	"time"
)

var ErrValidation = errors.New("missing or malformed required field")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")

// User models a registered account. The password is only ever held as a
// salted one-way hash; the plaintext never reaches storage or logs.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
