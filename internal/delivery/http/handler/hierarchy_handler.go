package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/usecase"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

// HierarchyHandler - обработчик списков уровней иерархии и поиска
type HierarchyHandler struct {
	hierarchyUC *usecase.HierarchyUseCase
	logger      *zap.Logger
}

// NewHierarchyHandler - создание нового HierarchyHandler
func NewHierarchyHandler(hierarchyUC *usecase.HierarchyUseCase, logger *zap.Logger) *HierarchyHandler {
	return &HierarchyHandler{
		hierarchyUC: hierarchyUC,
		logger:      logger,
	}
}

// scopeFromQuery строит CountScope из query-параметров region_id/district_id
func scopeFromQuery(c *fiber.Ctx) domain.CountScope {
	if id := int64(c.QueryInt("district_id")); id > 0 {
		return domain.ScopeDistrict(id)
	}
	if id := int64(c.QueryInt("region_id")); id > 0 {
		return domain.ScopeRegion(id)
	}
	return domain.CountScope{}
}

// ListRegions godoc
// @Summary Список областей
// @Description Возвращает все области, отсортированные по name_uz
// @Tags Hierarchy
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Region}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions [get]
func (h *HierarchyHandler) ListRegions(c *fiber.Ctx) error {
	regions, err := h.hierarchyUC.ListRegions(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, regions, &utils.Meta{Total: len(regions)})
}

// ListDistricts godoc
// @Summary Список районов
// @Description Возвращает районы; с region_id - только указанной области
// @Tags Hierarchy
// @Produce json
// @Param region_id query int false "ID области"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.District}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/districts [get]
func (h *HierarchyHandler) ListDistricts(c *fiber.Ctx) error {
	var regionID *int64
	if id := int64(c.QueryInt("region_id")); id > 0 {
		regionID = &id
	}

	districts, err := h.hierarchyUC.ListDistricts(c.Context(), regionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, districts, &utils.Meta{Total: len(districts)})
}

// ListMahallas godoc
// @Summary Список махаллей
// @Description Возвращает махалли в рамках области или района, включая скрытые
// @Tags Hierarchy
// @Produce json
// @Param region_id query int false "ID области"
// @Param district_id query int false "ID района"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Mahalla}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/mahallas [get]
func (h *HierarchyHandler) ListMahallas(c *fiber.Ctx) error {
	mahallas, err := h.hierarchyUC.ListMahallas(c.Context(), scopeFromQuery(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, mahallas, &utils.Meta{Total: len(mahallas)})
}

// ListStreets godoc
// @Summary Список улиц
// @Description Возвращает улицы в рамках области или района
// @Tags Hierarchy
// @Produce json
// @Param region_id query int false "ID области"
// @Param district_id query int false "ID района"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Street}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/streets [get]
func (h *HierarchyHandler) ListStreets(c *fiber.Ctx) error {
	streets, err := h.hierarchyUC.ListStreets(c.Context(), scopeFromQuery(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, streets, &utils.Meta{Total: len(streets)})
}

// ListRealEstate godoc
// @Summary Недвижимость района
// @Description Возвращает объекты недвижимости указанного района
// @Tags Hierarchy
// @Produce json
// @Param id path int true "ID района"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.RealEstate}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/districts/{id}/real-estate [get]
func (h *HierarchyHandler) ListRealEstate(c *fiber.Ctx) error {
	districtID, err := c.ParamsInt("id")
	if err != nil || districtID <= 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "invalid district id"}))
	}

	realEstate, err := h.hierarchyUC.ListRealEstate(c.Context(), int64(districtID))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, realEstate, &utils.Meta{Total: len(realEstate)})
}

// Search godoc
// @Summary Поиск по всем типам сущностей
// @Description Выполняет поиск по имени (uz/ru) и SOATO-коду среди областей, районов, махаллей и улиц разом, для табличного дашборда
// @Tags Hierarchy
// @Produce json
// @Param q query string true "Поисковый запрос (минимум 2 символа)"
// @Param limit query int false "Максимальное количество результатов" default(20)
// @Success 200 {object} utils.SuccessResponse{data=[]domain.DashboardItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/search [get]
func (h *HierarchyHandler) Search(c *fiber.Ctx) error {
	req := dto.SearchRequest{
		Query: c.Query("q"),
		Limit: c.QueryInt("limit", 20),
	}

	items, err := h.hierarchyUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}
