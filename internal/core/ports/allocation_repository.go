package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

// AllocationRepository persists manager-to-property allocations.
type AllocationRepository interface {
	Create(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Allocation, error)
	List(ctx context.Context) ([]*domain.Allocation, error)
	ListByManager(ctx context.Context, managerID int64) ([]*domain.Allocation, error)
	Count(ctx context.Context) (int64, error)
	CountByManager(ctx context.Context, managerID int64) (int64, error)
}
