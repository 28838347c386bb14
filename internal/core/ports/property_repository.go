package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

// PropertyRepository persists property listings.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	ListByKind(ctx context.Context, kind domain.PropertyKind) ([]*domain.Property, error)
}
