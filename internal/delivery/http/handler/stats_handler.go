package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/usecase"
)

// StatsHandler обрабатывает запросы панели статистики
type StatsHandler struct {
	statsUC     *usecase.StatsUseCase
	hierarchyUC *usecase.HierarchyUseCase
	logger      *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, hierarchyUC *usecase.HierarchyUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC:     statsUC,
		hierarchyUC: hierarchyUC,
		logger:      logger,
	}
}

// GetStats godoc
// @Summary Счётчики для панели статистики
// @Description Возвращает четвёрку счётчиков regions/districts/mahallas/streets. Форма зависит от глубины выбора: без параметров - глобальные итоги, с region_id - разрез области, с district_id - разрез района.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param region_id query int false "ID области"
// @Param district_id query int false "ID района"
// @Success 200 {object} utils.SuccessResponse{data=domain.LevelCounts}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.Context()

	regionID := int64(c.QueryInt("region_id"))
	districtID := int64(c.QueryInt("district_id"))

	var (
		selection       domain.Selection
		loadedDistricts int
		loadedMahallas  int
	)

	switch {
	case districtID > 0:
		district, err := h.hierarchyUC.GetDistrict(ctx, districtID)
		if err != nil {
			return utils.SendError(c, err)
		}
		region, err := h.hierarchyUC.GetRegion(ctx, district.RegionID)
		if err != nil {
			return utils.SendError(c, err)
		}
		mahallas, err := h.hierarchyUC.ListMahallas(ctx, domain.ScopeDistrict(districtID))
		if err != nil {
			return utils.SendError(c, err)
		}
		selection = domain.Selection{Region: region, District: district}
		loadedMahallas = len(mahallas)

	case regionID > 0:
		region, err := h.hierarchyUC.GetRegion(ctx, regionID)
		if err != nil {
			return utils.SendError(c, err)
		}
		districts, err := h.hierarchyUC.ListDistricts(ctx, &regionID)
		if err != nil {
			return utils.SendError(c, err)
		}
		selection = domain.Selection{Region: region}
		loadedDistricts = len(districts)
	}

	counts, err := h.statsUC.ComputeStats(ctx, selection, loadedDistricts, loadedMahallas)
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, counts, nil)
}
