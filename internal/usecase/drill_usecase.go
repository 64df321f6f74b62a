package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/geo"
)

// LayerSink - приёмник мутаций слоёв карты. Сам автомат навигации чист
// относительно хэндлов слоёв: он строит MapLayerStore как значение, а
// фактическую работу со слоями делегирует инжектированному sink.
type LayerSink interface {
	// Apply заменяет текущие слои карты содержимым store
	Apply(store domain.MapLayerStore)

	// FitBounds подгоняет камеру под границы выбранной сущности
	FitBounds(bound orb.Bound)
}

// NopLayerSink - sink без эффектов, для headless-использования и тестов
type NopLayerSink struct{}

func (NopLayerSink) Apply(domain.MapLayerStore) {}
func (NopLayerSink) FitBounds(orb.Bound)        {}

// DrillUseCase - автомат навигации по уровням regions/districts/mahallas.
// Переходы инициируются явным выбором пользователя либо автоматически по
// порогам зума; уровень улиц отдельным состоянием не является - улицы всегда
// грузятся боковым слоем рядом с районами и махаллями.
type DrillUseCase struct {
	hierarchyRepo repository.HierarchyRepository
	sink          LayerSink
	logger        *zap.Logger

	enterZoom   float64
	exitZoom    float64
	settleDelay time.Duration

	mu        sync.Mutex
	level     domain.DrillLevel
	selection domain.Selection
	store     domain.MapLayerStore
	// Поколение переходов: переход, начатый до более нового, не имеет права
	// закоммитить своё состояние
	gen         uint64
	settleTimer *time.Timer
}

// NewDrillUseCase создает новый экземпляр DrillUseCase в состоянии regions
func NewDrillUseCase(
	hierarchyRepo repository.HierarchyRepository,
	sink LayerSink,
	logger *zap.Logger,
	enterZoom, exitZoom float64,
	settleDelay time.Duration,
) *DrillUseCase {
	if sink == nil {
		sink = NopLayerSink{}
	}
	return &DrillUseCase{
		hierarchyRepo: hierarchyRepo,
		sink:          sink,
		logger:        logger,
		enterZoom:     enterZoom,
		exitZoom:      exitZoom,
		settleDelay:   settleDelay,
		level:         domain.LevelRegions,
		store:         domain.MapLayerStore{Level: domain.LevelRegions},
	}
}

// Level возвращает текущий уровень навигации
func (uc *DrillUseCase) Level() domain.DrillLevel {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.level
}

// Selection возвращает текущий выбор
func (uc *DrillUseCase) Selection() domain.Selection {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.selection
}

// Layers возвращает снимок текущих слоёв
func (uc *DrillUseCase) Layers() domain.MapLayerStore {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.store
}

// begin открывает переход и возвращает его поколение
func (uc *DrillUseCase) begin() uint64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.gen++
	return uc.gen
}

// commit применяет состояние перехода, если его не вытеснил более новый
func (uc *DrillUseCase) commit(myGen uint64, level domain.DrillLevel, selection domain.Selection, store domain.MapLayerStore) (*domain.MapLayerStore, error) {
	uc.mu.Lock()
	if uc.gen != myGen {
		uc.mu.Unlock()
		uc.logger.Debug("Discarding superseded navigation transition",
			zap.Uint64("generation", myGen))
		return nil, errors.ErrStaleComputation
	}
	uc.level = level
	uc.selection = selection
	uc.store = store
	uc.mu.Unlock()

	uc.sink.Apply(store)
	return &store, nil
}

// LoadRegions загружает стартовый слой областей (начальное состояние)
func (uc *DrillUseCase) LoadRegions(ctx context.Context) (*domain.MapLayerStore, error) {
	myGen := uc.begin()

	regions, err := uc.hierarchyRepo.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}

	return uc.commit(myGen, domain.LevelRegions, domain.Selection{}, domain.MapLayerStore{
		Level:   domain.LevelRegions,
		Regions: regions,
	})
}

// SelectRegion - переход regions -> districts: грузит районы области и
// улицы в рамках области, подгоняет камеру под границу области
func (uc *DrillUseCase) SelectRegion(ctx context.Context, regionID int64) (*domain.MapLayerStore, error) {
	myGen := uc.begin()

	region, err := uc.hierarchyRepo.GetRegionByID(ctx, regionID)
	if err != nil {
		return nil, err
	}

	var (
		districts []domain.District
		streets   []domain.Street
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		districts, err = uc.hierarchyRepo.ListDistricts(gctx, &regionID)
		return err
	})
	g.Go(func() (err error) {
		streets, err = uc.hierarchyRepo.ListStreets(gctx, domain.ScopeRegion(regionID))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load region layers: %w", err)
	}

	store, err := uc.commit(myGen, domain.LevelDistricts, domain.Selection{Region: region}, domain.MapLayerStore{
		Level:     domain.LevelDistricts,
		Districts: districts,
		Streets:   streets,
	})
	if err != nil {
		return nil, err
	}

	uc.fitBounds(region.Geometry)
	return store, nil
}

// SelectDistrict - переход districts -> mahallas по явному клику
func (uc *DrillUseCase) SelectDistrict(ctx context.Context, districtID int64) (*domain.MapLayerStore, error) {
	return uc.selectDistrict(ctx, districtID, true)
}

// selectDistrict грузит махалли, улицы и недвижимость района. fitCamera
// выключается на пути автоматического drill-in: пользователь уже назумил
// сам, повторная подгонка камеры боролась бы с его жестом.
func (uc *DrillUseCase) selectDistrict(ctx context.Context, districtID int64, fitCamera bool) (*domain.MapLayerStore, error) {
	myGen := uc.begin()

	district, err := uc.hierarchyRepo.GetDistrictByID(ctx, districtID)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	region := uc.selection.Region
	uc.mu.Unlock()

	// Выбор района из глобального поиска, минуя выбор области: восстановим
	// область из parent-связи
	if region == nil || region.ID != district.RegionID {
		region, err = uc.hierarchyRepo.GetRegionByID(ctx, district.RegionID)
		if err != nil {
			return nil, err
		}
	}

	var (
		mahallas   []domain.Mahalla
		streets    []domain.Street
		realEstate []domain.RealEstate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		mahallas, err = uc.hierarchyRepo.ListMahallas(gctx, domain.ScopeDistrict(districtID))
		return err
	})
	g.Go(func() (err error) {
		streets, err = uc.hierarchyRepo.ListStreets(gctx, domain.ScopeDistrict(districtID))
		return err
	})
	g.Go(func() (err error) {
		realEstate, err = uc.hierarchyRepo.ListRealEstate(gctx, districtID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load district layers: %w", err)
	}

	store, err := uc.commit(myGen, domain.LevelMahallas, domain.Selection{Region: region, District: district}, domain.MapLayerStore{
		Level:      domain.LevelMahallas,
		Mahallas:   mahallas,
		Streets:    streets,
		RealEstate: realEstate,
	})
	if err != nil {
		return nil, err
	}

	if fitCamera {
		uc.fitBounds(district.Geometry)
	}
	return store, nil
}

// Back - переход на уровень вверх: из mahallas очищаются слои махаллей,
// улиц и недвижимости и перегружаются районы родительской области; из
// districts сбрасывается весь выбор и перегружается список областей
func (uc *DrillUseCase) Back(ctx context.Context) (*domain.MapLayerStore, error) {
	uc.mu.Lock()
	level := uc.level
	region := uc.selection.Region
	store := uc.store
	uc.mu.Unlock()

	switch level {
	case domain.LevelMahallas:
		if region == nil {
			return nil, errors.ErrRegionNotFound
		}
		myGen := uc.begin()

		var (
			districts []domain.District
			streets   []domain.Street
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			districts, err = uc.hierarchyRepo.ListDistricts(gctx, &region.ID)
			return err
		})
		g.Go(func() (err error) {
			streets, err = uc.hierarchyRepo.ListStreets(gctx, domain.ScopeRegion(region.ID))
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("reload district layers: %w", err)
		}

		return uc.commit(myGen, domain.LevelDistricts, domain.Selection{Region: region}, domain.MapLayerStore{
			Level:     domain.LevelDistricts,
			Districts: districts,
			Streets:   streets,
		})

	case domain.LevelDistricts:
		myGen := uc.begin()

		regions, err := uc.hierarchyRepo.ListRegions(ctx)
		if err != nil {
			return nil, fmt.Errorf("reload regions: %w", err)
		}

		return uc.commit(myGen, domain.LevelRegions, domain.Selection{}, domain.MapLayerStore{
			Level:   domain.LevelRegions,
			Regions: regions,
		})

	default:
		// Уже на верхнем уровне
		return &store, nil
	}
}

// OnViewportChange принимает событие зума/панорамы. События коалесцируются:
// авто-переход оценивается только после паузы settleDelay, чтобы не
// сработать посреди жеста.
func (uc *DrillUseCase) OnViewportChange(vp domain.Viewport) {
	uc.mu.Lock()
	if uc.settleTimer != nil {
		uc.settleTimer.Stop()
	}
	uc.settleTimer = time.AfterFunc(uc.settleDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := uc.EvaluateViewport(ctx, vp); err != nil && err != errors.ErrStaleComputation {
			uc.logger.Warn("Auto drill evaluation failed", zap.Error(err))
		}
	})
	uc.mu.Unlock()
}

// EvaluateViewport решает авто-переход по устоявшемуся viewport:
//   - districts + zoom >= enterZoom: drill-in в район, содержащий центр
//     карты, без подгонки камеры;
//   - mahallas + zoom < exitZoom: drill-out тем же путём, что явный Back.
//
// Разрыв между порогами - полоса гистерезиса: зум, колеблющийся у границы,
// не вызывает осцилляции переходов. Возврат (nil, nil) - перехода нет.
func (uc *DrillUseCase) EvaluateViewport(ctx context.Context, vp domain.Viewport) (*domain.MapLayerStore, error) {
	uc.mu.Lock()
	level := uc.level
	districts := uc.store.Districts
	uc.mu.Unlock()

	switch {
	case level == domain.LevelDistricts && vp.Zoom >= uc.enterZoom:
		pt := orb.Point{vp.Center.Lng, vp.Center.Lat}
		for i := range districts {
			inside, err := geo.PointInRawGeometry(pt, districts[i].Geometry)
			if err != nil {
				uc.logger.Debug("Skipping district with malformed geometry",
					zap.Int64("id", districts[i].ID),
					zap.Error(err))
				continue
			}
			if inside {
				return uc.selectDistrict(ctx, districts[i].ID, false)
			}
		}
		return nil, nil

	case level == domain.LevelMahallas && vp.Zoom < uc.exitZoom:
		return uc.Back(ctx)

	default:
		return nil, nil
	}
}

// Stop отменяет отложенную оценку viewport
func (uc *DrillUseCase) Stop() {
	uc.mu.Lock()
	if uc.settleTimer != nil {
		uc.settleTimer.Stop()
		uc.settleTimer = nil
	}
	uc.mu.Unlock()
}

func (uc *DrillUseCase) fitBounds(rawGeometry []byte) {
	g, err := domain.DecodeGeometry(rawGeometry)
	if err != nil || g == nil {
		if err != nil {
			uc.logger.Debug("Cannot fit bounds: malformed geometry", zap.Error(err))
		}
		return
	}
	uc.sink.FitBounds(g.Bound())
}
