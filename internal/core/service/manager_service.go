package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

type ManagerService struct {
	managers    ports.ManagerRepository
	allocations ports.AllocationRepository
	logger      zerolog.Logger
}

func NewManagerService(managers ports.ManagerRepository, allocations ports.AllocationRepository, logger zerolog.Logger) *ManagerService {
	return &ManagerService{managers: managers, allocations: allocations, logger: logger}
}

func (s *ManagerService) Create(ctx context.Context, input ports.ManagerInput) (*domain.Manager, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domain.ErrInvalidManager
	}

	created, err := s.managers.Create(ctx, &domain.Manager{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Mobile:    input.Mobile,
		Email:     input.Email,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create manager")
		return nil, err
	}

	s.logger.Info().Int64("manager_id", created.ID).Msg("manager created")
	return created, nil
}

func (s *ManagerService) Update(ctx context.Context, id int64, input ports.ManagerInput) (*domain.Manager, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domain.ErrInvalidManager
	}

	manager, err := s.managers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	manager.FirstName = input.FirstName
	manager.LastName = input.LastName
	manager.Phone = input.Phone
	manager.Mobile = input.Mobile
	manager.Email = input.Email

	return s.managers.Update(ctx, manager)
}

func (s *ManagerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.managers.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.managers.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("manager_id", id).Msg("failed to delete manager")
		return err
	}
	s.logger.Info().Int64("manager_id", id).Msg("manager deleted")
	return nil
}

func (s *ManagerService) Get(ctx context.Context, id int64) (*domain.Manager, error) {
	return s.managers.FindByID(ctx, id)
}

func (s *ManagerService) List(ctx context.Context) ([]*domain.Manager, error) {
	return s.managers.List(ctx)
}

func (s *ManagerService) Search(ctx context.Context, firstName, lastName string) ([]*domain.Manager, error) {
	return s.managers.SearchByName(ctx, firstName, lastName)
}

// Stats returns the manager together with how many properties they currently
// oversee.
func (s *ManagerService) Stats(ctx context.Context, id int64) (*ports.ManagerStats, error) {
	manager, err := s.managers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.allocations.CountByManager(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.ManagerStats{Manager: manager, PropertyCount: count}, nil
}

func (s *ManagerService) Count(ctx context.Context) (int64, error) {
	return s.managers.Count(ctx)
}
