package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/pkg/validator"
	"github.com/manzil-geoservice/internal/usecase"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

// LocationHandler - обработчик точечного резолва координат
type LocationHandler struct {
	resolveUC *usecase.ResolveUseCase
	logger    *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(resolveUC *usecase.ResolveUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		resolveUC: resolveUC,
		logger:    logger,
	}
}

// Resolve godoc
// @Summary Резолв точки в адресную цепочку
// @Description Определяет улицу, махаллю, район и область, содержащие точку. Точка вне всех известных геометрий возвращает пустой объект, не ошибку.
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.ResolveRequest true "Координаты точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolvedLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/resolve [post]
func (h *LocationHandler) Resolve(c *fiber.Ctx) error {
	var req dto.ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "invalid request body"}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	location, err := h.resolveUC.Resolve(c.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, location, nil)
}

// ResolveGET godoc
// @Summary Резолв точки (query-вариант)
// @Description GET-вариант резолва для простой интеграции: координаты в query-параметрах
// @Tags Location
// @Accept json
// @Produce json
// @Param lat query number true "Широта"
// @Param lng query number true "Долгота"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResolvedLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/resolve [get]
func (h *LocationHandler) ResolveGET(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"reason": "lat is required and must be a number"}))
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"reason": "lng is required and must be a number"}))
	}

	location, err := h.resolveUC.Resolve(c.Context(), lat, lng)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, location, nil)
}
