package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

type AllocationService struct {
	allocations ports.AllocationRepository
	managers    ports.ManagerRepository
	properties  ports.PropertyRepository
	logger      zerolog.Logger
}

func NewAllocationService(
	allocations ports.AllocationRepository,
	managers ports.ManagerRepository,
	properties ports.PropertyRepository,
	logger zerolog.Logger,
) *AllocationService {
	return &AllocationService{
		allocations: allocations,
		managers:    managers,
		properties:  properties,
		logger:      logger,
	}
}

// Allocate links a manager to a property. Both sides must exist; the lookup
// errors propagate as-is so the handler maps them to 404s.
func (s *AllocationService) Allocate(ctx context.Context, managerID, propertyID int64) (*domain.Allocation, error) {
	if _, err := s.managers.FindByID(ctx, managerID); err != nil {
		return nil, err
	}
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}

	created, err := s.allocations.Create(ctx, &domain.Allocation{
		ManagerID:  managerID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("manager_id", managerID).Int64("property_id", propertyID).Msg("failed to create allocation")
		return nil, err
	}

	s.logger.Info().Int64("allocation_id", created.ID).Msg("allocation created")
	return created, nil
}

func (s *AllocationService) Release(ctx context.Context, id int64) error {
	if _, err := s.allocations.FindByID(ctx, id); err != nil {
		return err
	}
	return s.allocations.Delete(ctx, id)
}

func (s *AllocationService) Get(ctx context.Context, id int64) (*domain.Allocation, error) {
	return s.allocations.FindByID(ctx, id)
}

func (s *AllocationService) List(ctx context.Context) ([]*domain.Allocation, error) {
	return s.allocations.List(ctx)
}

func (s *AllocationService) ListByManager(ctx context.Context, managerID int64) ([]*domain.Allocation, error) {
	return s.allocations.ListByManager(ctx, managerID)
}

func (s *AllocationService) Count(ctx context.Context) (int64, error) {
	return s.allocations.Count(ctx)
}
