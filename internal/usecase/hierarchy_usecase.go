package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

const defaultSearchLimit = 20

// HierarchyUseCase отдаёт списки уровней иерархии и табличный поиск
type HierarchyUseCase struct {
	hierarchyRepo repository.HierarchyRepository
	logger        *zap.Logger
}

// NewHierarchyUseCase создает новый экземпляр HierarchyUseCase
func NewHierarchyUseCase(
	hierarchyRepo repository.HierarchyRepository,
	logger *zap.Logger,
) *HierarchyUseCase {
	return &HierarchyUseCase{
		hierarchyRepo: hierarchyRepo,
		logger:        logger,
	}
}

// ListRegions возвращает все области
func (uc *HierarchyUseCase) ListRegions(ctx context.Context) ([]domain.Region, error) {
	return uc.hierarchyRepo.ListRegions(ctx)
}

// ListDistricts возвращает районы, при regionID != nil - только области
func (uc *HierarchyUseCase) ListDistricts(ctx context.Context, regionID *int64) ([]domain.District, error) {
	return uc.hierarchyRepo.ListDistricts(ctx, regionID)
}

// ListMahallas возвращает махалли в scope
func (uc *HierarchyUseCase) ListMahallas(ctx context.Context, scope domain.CountScope) ([]domain.Mahalla, error) {
	return uc.hierarchyRepo.ListMahallas(ctx, scope)
}

// ListStreets возвращает улицы в scope
func (uc *HierarchyUseCase) ListStreets(ctx context.Context, scope domain.CountScope) ([]domain.Street, error) {
	return uc.hierarchyRepo.ListStreets(ctx, scope)
}

// ListRealEstate возвращает недвижимость района
func (uc *HierarchyUseCase) ListRealEstate(ctx context.Context, districtID int64) ([]domain.RealEstate, error) {
	return uc.hierarchyRepo.ListRealEstate(ctx, districtID)
}

// GetRegion возвращает область по ID
func (uc *HierarchyUseCase) GetRegion(ctx context.Context, id int64) (*domain.Region, error) {
	return uc.hierarchyRepo.GetRegionByID(ctx, id)
}

// GetDistrict возвращает район по ID
func (uc *HierarchyUseCase) GetDistrict(ctx context.Context, id int64) (*domain.District, error) {
	return uc.hierarchyRepo.GetDistrictByID(ctx, id)
}

// Search выполняет поиск по имени и коду среди всех типов сущностей
// разом, для общего табличного дашборда
func (uc *HierarchyUseCase) Search(ctx context.Context, req dto.SearchRequest) ([]domain.DashboardItem, error) {
	query := strings.TrimSpace(req.Query)
	if len([]rune(query)) < 2 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "query must be at least 2 characters"})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	items, err := uc.hierarchyRepo.SearchDashboard(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Dashboard search executed",
		zap.String("query", query),
		zap.Int("results", len(items)))
	return items, nil
}
