package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
)

// StatsUseCase поддерживает живую четвёрку счётчиков, форма которой зависит
// от глубины текущего выбора: глобально / область / район
type StatsUseCase struct {
	hierarchyRepo repository.HierarchyRepository
	cacheRepo     repository.CacheRepository
	logger        *zap.Logger
	totalsTTL     time.Duration

	// Монотонный счётчик поколений: результат вычисления, вытесненного более
	// новым вызовом, отбрасывается - медленный устаревший ответ не должен
	// перезаписать свежий.
	gen atomic.Uint64
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	hierarchyRepo repository.HierarchyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	totalsTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		hierarchyRepo: hierarchyRepo,
		cacheRepo:     cacheRepo,
		logger:        logger,
		totalsTTL:     totalsTTL,
	}
}

// ComputeStats пересчитывает счётчики для текущего выбора. Подзапросы режима
// выполняются конкурентно и соединяются до выдачи результата - частичный или
// смешанный кортеж наружу не попадает. Если за время вычисления пришёл более
// новый вызов, возвращается ErrStaleComputation и результат отбрасывается.
//
// loadedDistricts и loadedMahallas - размеры уже загруженных списков слоёв:
// в режиме области districts берётся из загруженного списка, в режиме района
// mahallas переиспользуется из памяти без повторного запроса.
func (uc *StatsUseCase) ComputeStats(
	ctx context.Context,
	selection domain.Selection,
	loadedDistricts int,
	loadedMahallas int,
) (*domain.LevelCounts, error) {
	myGen := uc.gen.Add(1)

	var counts *domain.LevelCounts
	var err error

	switch {
	case selection.Region == nil:
		counts, err = uc.globalCounts(ctx)
	case selection.District == nil:
		counts, err = uc.regionCounts(ctx, selection.Region.ID, loadedDistricts)
	default:
		counts, err = uc.districtCounts(ctx, selection.District.ID, loadedMahallas)
	}
	if err != nil {
		return nil, err
	}

	if uc.gen.Load() != myGen {
		uc.logger.Debug("Discarding superseded stats computation",
			zap.Uint64("generation", myGen))
		return nil, errors.ErrStaleComputation
	}

	return counts, nil
}

// globalCounts - режим без выбора: четыре глобальных счётчика хранилища
func (uc *StatsUseCase) globalCounts(ctx context.Context) (*domain.LevelCounts, error) {
	cached, err := uc.cacheRepo.GetTotals(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Totals fetched from cache")
		return cached, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get totals from cache", zap.Error(err))
	}

	counts := &domain.LevelCounts{}
	all := domain.CountScope{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Regions, err = uc.hierarchyRepo.CountRegions(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Districts, err = uc.hierarchyRepo.CountDistricts(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		counts.Mahallas, err = uc.hierarchyRepo.CountMahallas(gctx, all)
		return err
	})
	g.Go(func() (err error) {
		counts.Streets, err = uc.hierarchyRepo.CountStreets(gctx, all)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute global counts: %w", err)
	}

	if err := uc.cacheRepo.SetTotals(ctx, counts, uc.totalsTTL); err != nil {
		uc.logger.Warn("Failed to cache totals", zap.Error(err))
	}

	return counts, nil
}

// regionCounts - выбрана область: она сама считается одной единицей,
// районы берутся из загруженного списка, махалли и улицы пересчитываются
func (uc *StatsUseCase) regionCounts(ctx context.Context, regionID int64, loadedDistricts int) (*domain.LevelCounts, error) {
	counts := &domain.LevelCounts{
		Regions:   1,
		Districts: loadedDistricts,
	}

	scope := domain.ScopeRegion(regionID)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Mahallas, err = uc.hierarchyRepo.CountMahallas(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		counts.Streets, err = uc.hierarchyRepo.CountStreets(gctx, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute region counts: %w", err)
	}

	return counts, nil
}

// districtCounts - выбран район: махалли берутся из уже загруженного списка
// без повторного запроса, улицы пересчитываются по району
func (uc *StatsUseCase) districtCounts(ctx context.Context, districtID int64, loadedMahallas int) (*domain.LevelCounts, error) {
	counts := &domain.LevelCounts{
		Regions:   1,
		Districts: 1,
		Mahallas:  loadedMahallas,
	}

	streets, err := uc.hierarchyRepo.CountStreets(ctx, domain.ScopeDistrict(districtID))
	if err != nil {
		return nil, fmt.Errorf("compute district counts: %w", err)
	}
	counts.Streets = streets

	return counts, nil
}
