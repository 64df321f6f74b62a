package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/usecase"
)

func TestStatsUseCase_ComputeStats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("global mode returns store totals and caches them", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}
		all := domain.CountScope{}

		cache.On("GetTotals", mock.Anything).Return(nil, nil)
		repo.On("CountRegions", mock.Anything).Return(14, nil)
		repo.On("CountDistricts", mock.Anything, all).Return(208, nil)
		repo.On("CountMahallas", mock.Anything, all).Return(9419, nil)
		repo.On("CountStreets", mock.Anything, all).Return(120344, nil)
		cache.On("SetTotals", mock.Anything, mock.Anything, time.Hour).Return(nil)

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Hour)
		counts, err := uc.ComputeStats(ctx, domain.Selection{}, 0, 0)
		require.NoError(t, err)

		assert.Equal(t, &domain.LevelCounts{
			Regions: 14, Districts: 208, Mahallas: 9419, Streets: 120344,
		}, counts)
		cache.AssertCalled(t, "SetTotals", mock.Anything, mock.Anything, time.Hour)
	})

	t.Run("region mode counts districts from loaded list", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}
		scope := domain.ScopeRegion(10)

		repo.On("CountMahallas", mock.Anything, scope).Return(511, nil)
		repo.On("CountStreets", mock.Anything, scope).Return(8023, nil)

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Hour)
		selection := domain.Selection{Region: &domain.Region{ID: 10}}

		counts, err := uc.ComputeStats(ctx, selection, 11, 0)
		require.NoError(t, err)
		assert.Equal(t, &domain.LevelCounts{
			Regions: 1, Districts: 11, Mahallas: 511, Streets: 8023,
		}, counts)

		// Идемпотентность при неизменных входах
		counts2, err := uc.ComputeStats(ctx, selection, 11, 0)
		require.NoError(t, err)
		assert.Equal(t, counts, counts2)
	})

	t.Run("district mode reuses loaded mahalla list", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}

		repo.On("CountStreets", mock.Anything, domain.ScopeDistrict(20)).Return(340, nil)

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Hour)
		selection := domain.Selection{
			Region:   &domain.Region{ID: 10},
			District: &domain.District{ID: 20, RegionID: 10},
		}

		counts, err := uc.ComputeStats(ctx, selection, 11, 47)
		require.NoError(t, err)
		assert.Equal(t, &domain.LevelCounts{
			Regions: 1, Districts: 1, Mahallas: 47, Streets: 340,
		}, counts)

		// Махалли не перечитываются из хранилища
		repo.AssertNotCalled(t, "CountMahallas", mock.Anything, mock.Anything)
	})

	t.Run("cached totals short-circuit global mode", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}

		cached := &domain.LevelCounts{Regions: 14, Districts: 208, Mahallas: 9419, Streets: 120344}
		cache.On("GetTotals", mock.Anything).Return(cached, nil)

		uc := usecase.NewStatsUseCase(repo, cache, logger, time.Hour)
		counts, err := uc.ComputeStats(ctx, domain.Selection{}, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, cached, counts)
		repo.AssertNotCalled(t, "CountRegions", mock.Anything)
	})
}
