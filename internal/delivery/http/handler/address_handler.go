package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/usecase"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

// AddressHandler - обработчик точечных адресов
type AddressHandler struct {
	addressUC   *usecase.AddressUseCase
	addressRepo repository.AddressRepository
	logger      *zap.Logger
}

// NewAddressHandler - создание нового AddressHandler
func NewAddressHandler(
	addressUC *usecase.AddressUseCase,
	addressRepo repository.AddressRepository,
	logger *zap.Logger,
) *AddressHandler {
	return &AddressHandler{
		addressUC:   addressUC,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// Create godoc
// @Summary Создание адреса по точке
// @Description Резолвит координаты в адресную цепочку и сохраняет денормализованный снимок. Последующие изменения справочников на запись не влияют.
// @Tags Address
// @Accept json
// @Produce json
// @Param request body dto.CreateAddressRequest true "Точка и атрибуты адреса"
// @Success 201 {object} utils.SuccessResponse{data=domain.Address}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/addresses [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "invalid request body"}))
	}

	address, err := h.addressUC.CreateFromPoint(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, address, nil)
}

// GetByID godoc
// @Summary Адрес по ID
// @Description Возвращает сохранённый снимок адреса по UUID
// @Tags Address
// @Produce json
// @Param id path string true "UUID адреса"
// @Success 200 {object} utils.SuccessResponse{data=domain.Address}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/addresses/{id} [get]
func (h *AddressHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"reason": "invalid address id"}))
	}

	address, err := h.addressRepo.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, address, nil)
}
