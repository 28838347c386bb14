package ports

import (
	"context"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
)

// ManagerRepository persists property managers. Find lookups surface "not
// found" as domain.ErrManagerNotFound.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error)
	Update(ctx context.Context, manager *domain.Manager) (*domain.Manager, error)
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Manager, error)
	List(ctx context.Context) ([]*domain.Manager, error)
	SearchByName(ctx context.Context, firstName, lastName string) ([]*domain.Manager, error)
	Count(ctx context.Context) (int64, error)
}
