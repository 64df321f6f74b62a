package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/pkg/utils"
	"github.com/manzil-geoservice/internal/pkg/validator"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

// AddressUseCase создаёт денормализованные снимки адресов: перед записью
// точка прогоняется через резолвер, и найденная цепочка иерархии фиксируется
// в адресе навсегда
type AddressUseCase struct {
	resolveUC   *ResolveUseCase
	addressRepo repository.AddressRepository
	logger      *zap.Logger
}

// NewAddressUseCase создает новый экземпляр AddressUseCase
func NewAddressUseCase(
	resolveUC *ResolveUseCase,
	addressRepo repository.AddressRepository,
	logger *zap.Logger,
) *AddressUseCase {
	return &AddressUseCase{
		resolveUC:   resolveUC,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

// CreateFromPoint резолвит точку и сохраняет адрес со снимком имён и ID
// иерархии. Последующие изменения справочников адрес не трогают - это
// point-in-time запись.
func (uc *AddressUseCase) CreateFromPoint(ctx context.Context, req *dto.CreateAddressRequest) (*domain.Address, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}
	if !utils.ValidateCoordinates(*req.Latitude, *req.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	location, err := uc.resolveUC.Resolve(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("resolve point for address: %w", err)
	}

	address := &domain.Address{
		ID:          uuid.New(),
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		HouseNumber: req.HouseNumber,
		Description: req.Description,
	}
	if location.Region != nil {
		address.RegionID = &location.Region.ID
		address.RegionName = &location.Region.NameUz
	}
	if location.District != nil {
		address.DistrictID = &location.District.ID
		address.DistrictName = &location.District.NameUz
	}
	if location.Mahalla != nil {
		address.MahallaID = &location.Mahalla.ID
		address.MahallaName = &location.Mahalla.NameUz
	}
	if location.Street != nil {
		address.StreetID = &location.Street.ID
		address.StreetName = &location.Street.NameUz
	}

	created, err := uc.addressRepo.Create(ctx, address)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Address created",
		zap.String("address_id", created.ID.String()),
		zap.Bool("resolved", !location.IsEmpty()))
	return created, nil
}
