package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/domain/repository"
	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/usecase/dto"
)

// ReferenceUseCase - read access to the provider's reference tables.
type ReferenceUseCase struct {
	provider repository.LocationProvider
	logger   *zap.Logger
}

func NewReferenceUseCase(provider repository.LocationProvider, logger *zap.Logger) *ReferenceUseCase {
	return &ReferenceUseCase{
		provider: provider,
		logger:   logger,
	}
}

func (uc *ReferenceUseCase) ListFacilities(ctx context.Context) (*dto.FacilitiesResponse, error) {
	facilities, err := uc.provider.ListFacilities(ctx)
	if err != nil {
		uc.logger.Error("Failed to list facilities", zap.Error(err))
		return nil, errors.FromProvider(err)
	}
	if facilities == nil {
		facilities = []domain.Facility{}
	}

	return &dto.FacilitiesResponse{
		Facilities: facilities,
		Total:      len(facilities),
	}, nil
}

func (uc *ReferenceUseCase) ListObjectTypes(ctx context.Context) (*dto.ObjectTypesResponse, error) {
	types, err := uc.provider.ListObjectTypes(ctx)
	if err != nil {
		uc.logger.Error("Failed to list object types", zap.Error(err))
		return nil, errors.FromProvider(err)
	}
	if types == nil {
		types = []domain.ObjectType{}
	}

	return &dto.ObjectTypesResponse{
		ObjectTypes: types,
		Total:       len(types),
	}, nil
}

func (uc *ReferenceUseCase) GetConfiguration(ctx context.Context) (*domain.Configuration, error) {
	cfg, err := uc.provider.GetConfiguration(ctx)
	if err != nil {
		uc.logger.Error("Failed to get configuration", zap.Error(err))
		return nil, errors.FromProvider(err)
	}
	return cfg, nil
}

// LoadFacilityCatalog fetches the facility list once and freezes it into the catalog
// used for facility filters.
func LoadFacilityCatalog(ctx context.Context, provider repository.LocationProvider) (*domain.FacilityCatalog, error) {
	facilities, err := provider.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load facility catalog: %w", err)
	}
	return domain.NewFacilityCatalog(facilities), nil
}
