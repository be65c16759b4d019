package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/domain/repository"
	"github.com/branch-finder/internal/metrics"
	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/pkg/utils"
	"github.com/branch-finder/internal/usecase/dto"
)

// SearchUseCase - location search: candidates from the provider, ranked and filtered
// by FilterAndRank.
type SearchUseCase struct {
	provider  repository.LocationProvider
	catalog   *domain.FacilityCatalog
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewSearchUseCase - catalog is the facility catalog loaded at startup; a cacheTTL of
// zero disables response caching.
func NewSearchUseCase(
	provider repository.LocationProvider,
	catalog *domain.FacilityCatalog,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SearchUseCase {
	return &SearchUseCase{
		provider:  provider,
		catalog:   catalog,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// searchQuery is a SearchRequest with defaults applied.
type searchQuery struct {
	Latitude   float64          `json:"lat"`
	Longitude  float64          `json:"lon"`
	RadiusKm   float64          `json:"radius_km"`
	PublicType domain.PublicType `json:"type"`
	OpenNow    bool             `json:"open_now"`
	Facilities []int            `json:"facilities"`
	Limit      int              `json:"limit"`
	Page       int              `json:"page"`
}

// Search - find locations around a point.
func (uc *SearchUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	q, err := normalizeSearch(req)
	if err != nil {
		return nil, err
	}

	cacheKey := q.cacheKey()
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	candidates, err := uc.provider.FindCandidates(ctx, q.Latitude, q.Longitude)
	if err != nil {
		uc.logger.Error("Failed to fetch candidates",
			zap.Float64("lat", q.Latitude),
			zap.Float64("lon", q.Longitude),
			zap.Error(err),
		)
		return nil, errors.FromProvider(err)
	}

	criteria := q.criteria()
	if q.PublicType != "" && criteria.TypeGroup == "" {
		uc.logger.Debug("Unknown type group, not filtering by type", zap.String("type_group", string(q.PublicType)))
	}

	ranked := FilterAndRank(candidates, criteria, uc.catalog)

	results := make([]dto.BranchSummary, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, dto.ConvertSummary(r))
	}

	resp := &dto.SearchResponse{
		Results:      results,
		TotalResults: len(results),
		Page:         q.Page,
		PageSize:     q.Limit,
		SearchCenter: domain.Point{Latitude: q.Latitude, Longitude: q.Longitude},
		Filters:      q.appliedFilters(),
	}

	metrics.ObserveSearch(resp.TotalResults)
	uc.logger.Debug("Search completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("results", resp.TotalResults),
	)

	uc.toCache(ctx, cacheKey, resp)

	return resp, nil
}

func normalizeSearch(req dto.SearchRequest) (searchQuery, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return searchQuery{}, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return searchQuery{}, errors.ErrInvalidCoordinates
	}

	q := searchQuery{
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		RadiusKm:   dto.DefaultRadiusKm,
		PublicType: domain.PublicType(req.TypeGroup),
		Facilities: req.Facilities,
		Limit:      dto.DefaultLimit,
		Page:       dto.DefaultPage,
	}

	if req.RadiusKm != nil {
		if !utils.ValidateRadius(*req.RadiusKm) {
			return searchQuery{}, errors.ErrInvalidRadius
		}
		q.RadiusKm = *req.RadiusKm
	}

	if req.OpenNow != nil {
		q.OpenNow = *req.OpenNow
	}

	if req.Limit != nil {
		if *req.Limit < 1 || *req.Limit > dto.MaxLimit {
			return searchQuery{}, errors.ErrInvalidLimit
		}
		q.Limit = *req.Limit
	}

	if req.Page != nil {
		if *req.Page < 1 {
			return searchQuery{}, errors.ErrInvalidPage
		}
		q.Page = *req.Page
	}

	return q, nil
}

func (q searchQuery) criteria() domain.SearchCriteria {
	radius := q.RadiusKm
	c := domain.SearchCriteria{
		Center:      domain.Point{Latitude: q.Latitude, Longitude: q.Longitude},
		RadiusKm:    &radius,
		OpenNow:     q.OpenNow,
		FacilityIDs: q.Facilities,
		Limit:       q.Limit,
	}
	if tg, ok := domain.BackendTypeGroup(q.PublicType); ok {
		c.TypeGroup = tg
	}
	return c
}

func (q searchQuery) appliedFilters() dto.AppliedFilters {
	f := dto.AppliedFilters{
		RadiusKm:   q.RadiusKm,
		OpenNow:    q.OpenNow,
		Facilities: q.Facilities,
	}
	if q.PublicType != "" {
		tg := string(q.PublicType)
		f.TypeGroup = &tg
	}
	return f
}

func (q searchQuery) cacheKey() string {
	raw, _ := json.Marshal(q)
	sum := sha256.Sum256(raw)
	return "search:" + hex.EncodeToString(sum[:])
}

func (uc *SearchUseCase) fromCache(ctx context.Context, key string) *dto.SearchResponse {
	if uc.cacheTTL <= 0 {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to read search cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		metrics.ObserveCache("search", false)
		return nil
	}

	var resp dto.SearchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Discarding unreadable search cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}

	metrics.ObserveCache("search", true)
	return &resp
}

func (uc *SearchUseCase) toCache(ctx context.Context, key string, resp *dto.SearchResponse) {
	if uc.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal search response", zap.Error(err))
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search response", zap.String("key", key), zap.Error(err))
	}
}
