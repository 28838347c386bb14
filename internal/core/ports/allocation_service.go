package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

type AllocationService interface {
	// Allocate links a manager to a property after checking both exist.
	Allocate(ctx context.Context, managerID, propertyID int64) (*domain.Allocation, error)
	Release(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*domain.Allocation, error)
	List(ctx context.Context) ([]*domain.Allocation, error)
	ListByManager(ctx context.Context, managerID int64) ([]*domain.Allocation, error)
	Count(ctx context.Context) (int64, error)
}
