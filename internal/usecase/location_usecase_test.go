package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/branch-finder/internal/domain"
	"github.com/branch-finder/internal/pkg/errors"
	"github.com/branch-finder/internal/repository/memory"
	"github.com/branch-finder/internal/usecase"
	"github.com/branch-finder/internal/usecase/dto"
)

func TestLocationUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewLocationUseCase(memory.NewProvider(), &MockCacheRepository{}, zap.NewNop(), 0)

	t.Run("existing location", func(t *testing.T) {
		detail, err := uc.GetDetail(ctx, 12001)
		require.NoError(t, err)

		assert.Equal(t, int64(12001), detail.ID)
		assert.Equal(t, "Sparkasse Mainz - Hauptstelle", detail.Name)
		assert.Equal(t, "FILIALE", detail.Type)
		assert.Nil(t, detail.DistanceMeters)
		require.NotNil(t, detail.Contact)
		assert.Equal(t, "+49 6131 3840", detail.Contact.Phone)
		require.NotNil(t, detail.Coordinates)
		assert.Equal(t, 49.9928617, detail.Coordinates.Latitude)
		assert.Len(t, detail.OpeningHours, 5)
	})

	t.Run("unknown id", func(t *testing.T) {
		detail, err := uc.GetDetail(ctx, 99999)
		assert.Nil(t, detail)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeNotFound, appErr.Code)
		assert.Equal(t, 404, appErr.StatusCode)
		assert.Equal(t, int64(99999), appErr.Details["id"])
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := uc.GetDetail(ctx, 0)

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.CodeInvalidArguments, appErr.Code)
	})
}

func TestLocationUseCase_GetDetail_ProviderError(t *testing.T) {
	ctx := context.Background()
	provider := &MockLocationProvider{}
	provider.On("GetByID", ctx, int64(7)).
		Return(nil, errors.NewProviderError(errors.KindTimeout, "get_by_id", context.DeadlineExceeded))

	uc := usecase.NewLocationUseCase(provider, &MockCacheRepository{}, zap.NewNop(), 0)
	_, err := uc.GetDetail(ctx, 7)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeProviderTimeout, appErr.Code)
	assert.Equal(t, "get_by_id", appErr.Details["operation"])
}

func TestLocationUseCase_GetDetail_Cache(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute

	t.Run("miss stores detail", func(t *testing.T) {
		provider := &MockLocationProvider{}
		cache := &MockCacheRepository{}

		provider.On("GetByID", ctx, int64(5)).Return(&domain.Location{ID: 5, OfficeName: "Five"}, nil)
		cache.On("Get", ctx, "location:5").Return(nil, nil)
		cache.On("Set", ctx, "location:5", mock.AnythingOfType("[]uint8"), ttl).Return(nil)

		uc := usecase.NewLocationUseCase(provider, cache, zap.NewNop(), ttl)
		detail, err := uc.GetDetail(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Five", detail.Name)

		cache.AssertExpectations(t)
	})

	t.Run("hit skips provider", func(t *testing.T) {
		provider := &MockLocationProvider{}
		cache := &MockCacheRepository{}

		data, err := json.Marshal(dto.BranchDetail{BranchSummary: dto.BranchSummary{ID: 5, Name: "Cached"}})
		require.NoError(t, err)
		cache.On("Get", ctx, "location:5").Return(data, nil)

		uc := usecase.NewLocationUseCase(provider, cache, zap.NewNop(), ttl)
		detail, err := uc.GetDetail(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Cached", detail.Name)

		provider.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		provider := &MockLocationProvider{}
		cache := &MockCacheRepository{}

		provider.On("GetByID", ctx, int64(6)).Return(nil, nil)
		cache.On("Get", ctx, "location:6").Return(nil, nil)

		uc := usecase.NewLocationUseCase(provider, cache, zap.NewNop(), ttl)
		_, err := uc.GetDetail(ctx, 6)
		require.Error(t, err)

		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
