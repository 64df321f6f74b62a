package usecase_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/usecase"
)

func TestSummaryUseCase_BuildSummaryTree(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("composes nested tree with both stat levels", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}

		cache.On("GetSummaryTree", mock.Anything).Return(nil, nil)
		cache.On("SetSummaryTree", mock.Anything, mock.Anything, 10*time.Minute).Return(nil)

		repo.On("ListRegions", mock.Anything).Return([]domain.Region{
			{ID: 10, NameUz: "Andijon viloyati", Code: "1703"},
		}, nil)
		repo.On("ListDistricts", mock.Anything, ptrInt64(10)).Return([]domain.District{
			{ID: 21, NameUz: "Asaka tumani", Code: "1703202", RegionID: 10},
			{ID: 22, NameUz: "Baliqchi tumani", Code: "1703203", RegionID: 10},
		}, nil)

		scope := domain.ScopeRegion(10)
		repo.On("CountMahallas", mock.Anything, scope).Return(95, nil)
		repo.On("CountStreets", mock.Anything, scope).Return(1200, nil)
		repo.On("CountRealEstate", mock.Anything, scope).Return(88, nil)
		repo.On("CountMahallasByDistricts", mock.Anything, []int64{21, 22}).
			Return(map[int64]int{21: 40, 22: 55}, nil)
		repo.On("CountStreetsByDistricts", mock.Anything, []int64{21, 22}).
			Return(map[int64]int{21: 700, 22: 500}, nil)
		repo.On("CountRealEstateByDistricts", mock.Anything, []int64{21, 22}).
			Return(map[int64]int{21: 88}, nil)

		uc := usecase.NewSummaryUseCase(repo, cache, logger, 10*time.Minute)
		tree, err := uc.BuildSummaryTree(ctx)
		require.NoError(t, err)
		require.Len(t, tree, 1)

		region := tree[0]
		assert.Equal(t, "1703", region.Code)
		assert.Equal(t, 95, region.Stats.MahallaCount)
		require.Len(t, region.Districts, 2)
		assert.Equal(t, 40, region.Districts[0].Stats.MahallaCount)
		assert.Equal(t, 55, region.Districts[1].Stats.MahallaCount)
		// Район без недвижимости получает нулевой счётчик, не пропуск
		assert.Equal(t, 0, region.Districts[1].Stats.RealEstateCount)
	})

	t.Run("cache hit skips store entirely", func(t *testing.T) {
		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}

		cached := []domain.RegionSummary{{ID: 10, NameUz: "Andijon viloyati"}}
		cache.On("GetSummaryTree", mock.Anything).Return(cached, nil)

		uc := usecase.NewSummaryUseCase(repo, cache, logger, 10*time.Minute)
		tree, err := uc.BuildSummaryTree(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, tree)
		repo.AssertNotCalled(t, "ListRegions", mock.Anything)
	})

	// Свойство: при согласованных FK-данных областной счётчик махаллей равен
	// сумме районных. Генерируем синтетическую иерархию и проверяем.
	t.Run("region counts equal sum of district counts on consistent data", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))

		repo := &MockHierarchyRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetSummaryTree", mock.Anything).Return(nil, nil)
		cache.On("SetSummaryTree", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		regionCount := 5
		regions := make([]domain.Region, 0, regionCount)
		for r := 0; r < regionCount; r++ {
			regionID := int64(100 + r)
			regions = append(regions, domain.Region{
				ID:     regionID,
				NameUz: fmt.Sprintf("Viloyat %02d", r),
				Code:   fmt.Sprintf("17%02d", r),
			})

			districtCount := 1 + rng.Intn(6)
			districts := make([]domain.District, 0, districtCount)
			districtIDs := make([]int64, 0, districtCount)
			mahallasByDistrict := make(map[int64]int, districtCount)
			streetsByDistrict := make(map[int64]int, districtCount)
			realEstateByDistrict := make(map[int64]int, districtCount)

			totalMahallas, totalStreets, totalRealEstate := 0, 0, 0
			for d := 0; d < districtCount; d++ {
				districtID := regionID*100 + int64(d)
				districts = append(districts, domain.District{
					ID: districtID, RegionID: regionID,
					NameUz: fmt.Sprintf("Tuman %02d-%02d", r, d),
				})
				districtIDs = append(districtIDs, districtID)

				m, s, re := rng.Intn(80), rng.Intn(900), rng.Intn(50)
				mahallasByDistrict[districtID] = m
				streetsByDistrict[districtID] = s
				realEstateByDistrict[districtID] = re
				totalMahallas += m
				totalStreets += s
				totalRealEstate += re
			}

			repo.On("ListDistricts", mock.Anything, ptrInt64(regionID)).Return(districts, nil)
			scope := domain.ScopeRegion(regionID)
			repo.On("CountMahallas", mock.Anything, scope).Return(totalMahallas, nil)
			repo.On("CountStreets", mock.Anything, scope).Return(totalStreets, nil)
			repo.On("CountRealEstate", mock.Anything, scope).Return(totalRealEstate, nil)
			repo.On("CountMahallasByDistricts", mock.Anything, districtIDs).Return(mahallasByDistrict, nil)
			repo.On("CountStreetsByDistricts", mock.Anything, districtIDs).Return(streetsByDistrict, nil)
			repo.On("CountRealEstateByDistricts", mock.Anything, districtIDs).Return(realEstateByDistrict, nil)
		}
		repo.On("ListRegions", mock.Anything).Return(regions, nil)

		uc := usecase.NewSummaryUseCase(repo, cache, logger, time.Minute)
		tree, err := uc.BuildSummaryTree(ctx)
		require.NoError(t, err)
		require.Len(t, tree, regionCount)

		for _, region := range tree {
			sumMahallas, sumStreets, sumRealEstate := 0, 0, 0
			for _, district := range region.Districts {
				sumMahallas += district.Stats.MahallaCount
				sumStreets += district.Stats.StreetCount
				sumRealEstate += district.Stats.RealEstateCount
			}
			assert.Equal(t, region.Stats.MahallaCount, sumMahallas, "region %d mahallas", region.ID)
			assert.Equal(t, region.Stats.StreetCount, sumStreets, "region %d streets", region.ID)
			assert.Equal(t, region.Stats.RealEstateCount, sumRealEstate, "region %d real estate", region.ID)
		}
	})
}
