package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

// CreatePropertyInput carries the fields common to both listing kinds plus
// the kind-specific ones; the service validates the combination.
type CreatePropertyInput struct {
	Kind        domain.PropertyKind
	Type        string
	Bedrooms    int
	Bathrooms   int
	Description string
	Address     domain.Address

	SalePrice  int64
	WeeklyRent int64
	Furnished  bool
}

type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	ListSales(ctx context.Context) ([]*domain.Property, error)
	ListRentals(ctx context.Context) ([]*domain.Property, error)
}
