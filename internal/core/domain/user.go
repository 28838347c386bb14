package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash holds the 128-character
// lowercase hex SHA-512 digest of the password; the plaintext is never stored.
type User struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
}

// Workflow errors. All but ErrPersistence are user-correctable: the handler
// turns them into a flash message and the session keeps its current state so
// the user can retry.
var (
	ErrUserNotFound     = errors.New("username does not exist")
	ErrBadCredential    = errors.New("the password specified is not correct")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrEmailNotFound    = errors.New("email does not exist")
	ErrPasswordMismatch = errors.New("the specified passwords do not match")
	ErrCodeMismatch     = errors.New("wrong verification code")
	ErrPersistence      = errors.New("persistence failure")
)
