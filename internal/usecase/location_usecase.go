package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain/repository"
	"github.com/branch-finder/internal/metrics"
	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/usecase/dto"
)

// LocationUseCase - single location lookup.
type LocationUseCase struct {
	provider  repository.LocationProvider
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewLocationUseCase(
	provider repository.LocationProvider,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *LocationUseCase {
	return &LocationUseCase{
		provider:  provider,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetDetail returns the detail view of a location, or a not_found error.
func (uc *LocationUseCase) GetDetail(ctx context.Context, id int64) (*dto.BranchDetail, error) {
	if id <= 0 {
		return nil, errors.ErrInvalidArguments.WithMessage("id must be a positive integer")
	}

	cacheKey := fmt.Sprintf("location:%d", id)
	if uc.cacheTTL > 0 {
		if detail := uc.fromCache(ctx, cacheKey); detail != nil {
			return detail, nil
		}
	}

	loc, err := uc.provider.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get location", zap.Int64("id", id), zap.Error(err))
		return nil, errors.FromProvider(err)
	}
	if loc == nil {
		return nil, errors.ErrLocationNotFound.
			WithMessage(fmt.Sprintf("no location with id %d", id)).
			WithDetails(map[string]interface{}{"id": id})
	}

	detail := dto.ConvertDetail(loc)

	if uc.cacheTTL > 0 {
		if data, err := json.Marshal(detail); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache location", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return &detail, nil
}

func (uc *LocationUseCase) fromCache(ctx context.Context, key string) *dto.BranchDetail {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read location cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		metrics.ObserveCache("location", false)
		return nil
	}

	var detail dto.BranchDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		uc.logger.Warn("Discarding unreadable location cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}

	metrics.ObserveCache("location", true)
	return &detail
}
