package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
)

// SummaryUseCase строит дерево область -> районы со счётчиками потомков
type SummaryUseCase struct {
	hierarchyRepo repository.HierarchyRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	cacheTTL      time.Duration
}

// NewSummaryUseCase создает новый экземпляр SummaryUseCase
func NewSummaryUseCase(
	hierarchyRepo repository.HierarchyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SummaryUseCase {
	return &SummaryUseCase{
		hierarchyRepo: hierarchyRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		cacheTTL:      cacheTTL,
	}
}

// BuildSummaryTree возвращает все области (name_uz ASC) с их районами и
// счётчиками махаллей/улиц/недвижимости на обоих уровнях. Счётчики уровней
// независимы: движок доверяет scoped-запросам хранилища и не сверяет сумму
// районных счётчиков с областным - это инвариант корректных FK-данных.
func (uc *SummaryUseCase) BuildSummaryTree(ctx context.Context) ([]domain.RegionSummary, error) {
	cached, err := uc.cacheRepo.GetSummaryTree(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Summary tree fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get summary tree from cache", zap.Error(err))
	}

	regions, err := uc.hierarchyRepo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	tree := make([]domain.RegionSummary, len(regions))

	// Области независимы - собираем их параллельно
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range regions {
		i := i
		g.Go(func() error {
			summary, err := uc.buildRegionSummary(gctx, &regions[i])
			if err != nil {
				return err
			}
			tree[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetSummaryTree(ctx, tree, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache summary tree", zap.Error(err))
	}

	return tree, nil
}

// buildRegionSummary собирает одну область: три областных счётчика и три
// сгруппированных районных запускаются конкурентно, без взаимного порядка
func (uc *SummaryUseCase) buildRegionSummary(ctx context.Context, region *domain.Region) (*domain.RegionSummary, error) {
	districts, err := uc.hierarchyRepo.ListDistricts(ctx, &region.ID)
	if err != nil {
		return nil, fmt.Errorf("list districts of region %d: %w", region.ID, err)
	}

	districtIDs := make([]int64, len(districts))
	for i := range districts {
		districtIDs[i] = districts[i].ID
	}

	summary := &domain.RegionSummary{
		ID:     region.ID,
		NameUz: region.NameUz,
		Code:   region.Code,
	}

	var (
		mahallasByDistrict   map[int64]int
		streetsByDistrict    map[int64]int
		realEstateByDistrict map[int64]int
	)

	scope := domain.ScopeRegion(region.ID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary.Stats.MahallaCount, err = uc.hierarchyRepo.CountMahallas(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		summary.Stats.StreetCount, err = uc.hierarchyRepo.CountStreets(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		summary.Stats.RealEstateCount, err = uc.hierarchyRepo.CountRealEstate(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		mahallasByDistrict, err = uc.hierarchyRepo.CountMahallasByDistricts(gctx, districtIDs)
		return err
	})
	g.Go(func() (err error) {
		streetsByDistrict, err = uc.hierarchyRepo.CountStreetsByDistricts(gctx, districtIDs)
		return err
	})
	g.Go(func() (err error) {
		realEstateByDistrict, err = uc.hierarchyRepo.CountRealEstateByDistricts(gctx, districtIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count region %d: %w", region.ID, err)
	}

	summary.Districts = make([]domain.DistrictSummary, len(districts))
	for i := range districts {
		summary.Districts[i] = domain.DistrictSummary{
			ID:     districts[i].ID,
			NameUz: districts[i].NameUz,
			Code:   districts[i].Code,
			Stats: domain.HierarchyStats{
				MahallaCount:    mahallasByDistrict[districts[i].ID],
				StreetCount:     streetsByDistrict[districts[i].ID],
				RealEstateCount: realEstateByDistrict[districts[i].ID],
			},
		}
	}

	return summary, nil
}

// InvalidateSummaryTree сбрасывает кеш дерева после изменений справочников
func (uc *SummaryUseCase) InvalidateSummaryTree(ctx context.Context) {
	if err := uc.cacheRepo.DeleteSummaryTree(ctx); err != nil {
		uc.logger.Warn("Failed to invalidate summary tree cache", zap.Error(err))
	}
}
