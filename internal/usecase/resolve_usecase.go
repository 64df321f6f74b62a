package usecase

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/geo"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

// ResolveUseCase определяет, какая улица/махалля/район/область содержит точку
type ResolveUseCase struct {
	hierarchyRepo repository.HierarchyRepository
	logger        *zap.Logger
}

// NewResolveUseCase создает новый экземпляр ResolveUseCase
func NewResolveUseCase(
	hierarchyRepo repository.HierarchyRepository,
	logger *zap.Logger,
) *ResolveUseCase {
	return &ResolveUseCase{
		hierarchyRepo: hierarchyRepo,
		logger:        logger,
	}
}

// Resolve выполняет точечный резолв: сканирует уровни от самого детального к
// общему, первый матч на уровне выигрывает, сканирование уровня на нём
// останавливается. Недостающие предки дозаполняются из реляционных связей,
// а не повторным геометрическим тестом.
//
// Геометрия улиц - LineString, и полигональный тест над ней всегда false:
// улица по точке не находится никогда. Поведение сохранено намеренно, см.
// DESIGN.md.
func (uc *ResolveUseCase) Resolve(ctx context.Context, lat, lng float64) (*dto.ResolvedLocation, error) {
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	pt := orb.Point{lng, lat}

	// Четыре списка-кандидата загружаются параллельно. Это не атомарный
	// снимок - каждый запрос консистентен сам по себе.
	var (
		streets   []domain.Street
		mahallas  []domain.Mahalla
		districts []domain.District
		regions   []domain.Region
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		streets, err = uc.hierarchyRepo.ListStreets(gctx, domain.CountScope{})
		return err
	})
	g.Go(func() (err error) {
		mahallas, err = uc.hierarchyRepo.ListMahallas(gctx, domain.CountScope{})
		return err
	})
	g.Go(func() (err error) {
		districts, err = uc.hierarchyRepo.ListDistricts(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		regions, err = uc.hierarchyRepo.ListRegions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load candidate entities: %w", err)
	}

	result := &dto.ResolvedLocation{}

	for i := range streets {
		if uc.containsPoint(pt, streets[i].Geometry, "street", streets[i].ID) {
			result.Street = &dto.ResolvedUnit{ID: streets[i].ID, NameUz: streets[i].NameUz}
			break
		}
	}

	for i := range mahallas {
		if uc.containsPoint(pt, mahallas[i].Geometry, "mahalla", mahallas[i].ID) {
			result.Mahalla = &dto.ResolvedMahalla{
				ID:     mahallas[i].ID,
				NameUz: mahallas[i].NameUz,
				Code:   mahallas[i].Code,
			}
			break
		}
	}

	for i := range districts {
		if uc.containsPoint(pt, districts[i].Geometry, "district", districts[i].ID) {
			result.District = &dto.ResolvedUnit{ID: districts[i].ID, NameUz: districts[i].NameUz}
			break
		}
	}

	for i := range regions {
		if uc.containsPoint(pt, regions[i].Geometry, "region", regions[i].ID) {
			result.Region = &dto.ResolvedUnit{ID: regions[i].ID, NameUz: regions[i].NameUz}
			break
		}
	}

	if err := uc.backfillAncestors(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// containsPoint изолирует ошибку геометрии одной сущности: битая геометрия -
// это промах для этой сущности, а не отказ всего резолва
func (uc *ResolveUseCase) containsPoint(pt orb.Point, raw []byte, kind string, id int64) bool {
	inside, err := geo.PointInRawGeometry(pt, raw)
	if err != nil {
		uc.logger.Debug("Skipping entity with malformed geometry",
			zap.String("kind", kind),
			zap.Int64("id", id),
			zap.Error(err))
		return false
	}
	return inside
}

// backfillAncestors дозаполняет недостающие верхние уровни из сохранённых
// parent-связей наиболее детальной найденной сущности
func (uc *ResolveUseCase) backfillAncestors(ctx context.Context, result *dto.ResolvedLocation) error {
	switch {
	case result.Street != nil && (result.Mahalla == nil || result.District == nil || result.Region == nil):
		chain, err := uc.hierarchyRepo.GetStreetWithAncestors(ctx, result.Street.ID)
		if err != nil {
			return fmt.Errorf("backfill street ancestors: %w", err)
		}
		if result.Mahalla == nil && chain.Mahalla != nil {
			result.Mahalla = &dto.ResolvedMahalla{
				ID:     chain.Mahalla.ID,
				NameUz: chain.Mahalla.NameUz,
				Code:   chain.Mahalla.Code,
			}
		}
		if result.District == nil {
			result.District = &dto.ResolvedUnit{ID: chain.District.ID, NameUz: chain.District.NameUz}
		}
		if result.Region == nil {
			result.Region = &dto.ResolvedUnit{ID: chain.Region.ID, NameUz: chain.Region.NameUz}
		}

	case result.Mahalla != nil && (result.District == nil || result.Region == nil):
		chain, err := uc.hierarchyRepo.GetMahallaWithAncestors(ctx, result.Mahalla.ID)
		if err != nil {
			return fmt.Errorf("backfill mahalla ancestors: %w", err)
		}
		if result.District == nil {
			result.District = &dto.ResolvedUnit{ID: chain.District.ID, NameUz: chain.District.NameUz}
		}
		if result.Region == nil {
			result.Region = &dto.ResolvedUnit{ID: chain.Region.ID, NameUz: chain.Region.NameUz}
		}

	case result.District != nil && result.Region == nil:
		district, err := uc.hierarchyRepo.GetDistrictByID(ctx, result.District.ID)
		if err != nil {
			return fmt.Errorf("backfill district parent: %w", err)
		}
		region, err := uc.hierarchyRepo.GetRegionByID(ctx, district.RegionID)
		if err != nil {
			return fmt.Errorf("backfill region: %w", err)
		}
		result.Region = &dto.ResolvedUnit{ID: region.ID, NameUz: region.NameUz}
	}

	return nil
}
