package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

type ManagerInput struct {
	FirstName string
	LastName  string
	Phone     string
	Mobile    string
	Email     string
}

// ManagerStats pairs a manager with the number of properties currently
// allocated to them.
type ManagerStats struct {
	Manager       *domain.Manager `json:"manager"`
	PropertyCount int64           `json:"property_count"`
}

type ManagerService interface {
	Create(ctx context.Context, input ManagerInput) (*domain.Manager, error)
	Update(ctx context.Context, id int64, input ManagerInput) (*domain.Manager, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Manager, error)
	List(ctx context.Context) ([]*domain.Manager, error)
	// Search matches on first name, last name, or both; empty terms match all.
	Search(ctx context.Context, firstName, lastName string) ([]*domain.Manager, error)
	Stats(ctx context.Context, id int64) (*ManagerStats, error)
	Count(ctx context.Context) (int64, error)
}
