package domain

import (
	"errors"
	"time"
)

var (
	ErrAllocationNotFound = errors.New("allocation not found")
	ErrInvalidAllocation  = errors.New("invalid allocation")
)

// Allocation links a property manager to a property they oversee.
type Allocation struct {
	ID         int64     `json:"id"`
	ManagerID  int64     `json:"manager_id"`
	PropertyID int64     `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}
