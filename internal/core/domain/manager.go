package domain

import "errors"

var (
	ErrManagerNotFound = errors.New("property manager not found")
	ErrInvalidManager  = errors.New("invalid property manager")
)

// Manager is a property manager who can be allocated properties to oversee.
type Manager struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
}
