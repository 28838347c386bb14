package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thoughts-cell/Property-Management-System/internal/core/domain"
	"github.com/thoughts-cell/Property-Management-System/internal/core/ports"
)

type PropertyService struct {
	repo   ports.PropertyRepository
	logger zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	if err := validatePropertyInput(input); err != nil {
		return nil, err
	}

	property := &domain.Property{
		Kind:        input.Kind,
		Type:        input.Type,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Description: input.Description,
		Address:     input.Address,
	}
	switch input.Kind {
	case domain.KindSale:
		property.SalePrice = input.SalePrice
	case domain.KindRent:
		property.WeeklyRent = input.WeeklyRent
		property.Furnished = input.Furnished
	}

	created, err := s.repo.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(input.Kind)).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Int64("property_id", created.ID).Str("kind", string(created.Kind)).Msg("property created")
	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) ListSales(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.ListByKind(ctx, domain.KindSale)
}

func (s *PropertyService) ListRentals(ctx context.Context) ([]*domain.Property, error) {
	return s.repo.ListByKind(ctx, domain.KindRent)
}

func validatePropertyInput(input ports.CreatePropertyInput) error {
	if input.Kind != domain.KindSale && input.Kind != domain.KindRent {
		return domain.ErrInvalidProperty
	}
	if input.Type == "" || input.Bedrooms < 0 || input.Bathrooms < 0 {
		return domain.ErrInvalidProperty
	}
	if input.Kind == domain.KindSale && input.SalePrice <= 0 {
		return domain.ErrInvalidProperty
	}
	if input.Kind == domain.KindRent && input.WeeklyRent <= 0 {
		return domain.ErrInvalidProperty
	}
	return nil
}
