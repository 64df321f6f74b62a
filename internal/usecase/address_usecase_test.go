package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/pkg/errors"
	"github.com/manzil-geoservice/internal/usecase"
	"github.com/manzil-geoservice/internal/usecase/dto"
)

func TestAddressUseCase_CreateFromPoint(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("persists denormalized hierarchy snapshot", func(t *testing.T) {
		hierarchyRepo := &MockHierarchyRepository{}
		addressRepo := &MockAddressRepository{}

		// Точка внутри района и области, вне махаллей и улиц
		hierarchyRepo.On("ListRegions", mock.Anything).Return([]domain.Region{
			{ID: 1, NameUz: "Toshkent shahri", Geometry: polyJSON(69.0, 41.0, 70.0, 42.0)},
		}, nil)
		hierarchyRepo.On("ListDistricts", mock.Anything, (*int64)(nil)).Return([]domain.District{
			{ID: 11, RegionID: 1, NameUz: "Chilonzor tumani", Geometry: polyJSON(69.1, 41.2, 69.3, 41.4)},
		}, nil)
		hierarchyRepo.On("ListMahallas", mock.Anything, domain.CountScope{}).Return([]domain.Mahalla{}, nil)
		hierarchyRepo.On("ListStreets", mock.Anything, domain.CountScope{}).Return([]domain.Street{}, nil)

		addressRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Address) bool {
			return a.RegionID != nil && *a.RegionID == 1 &&
				a.DistrictID != nil && *a.DistrictID == 11 &&
				a.MahallaID == nil && a.StreetID == nil &&
				a.RegionName != nil && *a.RegionName == "Toshkent shahri"
		})).Return(&domain.Address{ID: uuid.New()}, nil)

		resolveUC := usecase.NewResolveUseCase(hierarchyRepo, logger)
		uc := usecase.NewAddressUseCase(resolveUC, addressRepo, logger)

		house := "12A"
		created, err := uc.CreateFromPoint(ctx, &dto.CreateAddressRequest{
			Latitude:    ptrFloat64(41.3),
			Longitude:   ptrFloat64(69.2),
			HouseNumber: &house,
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		addressRepo.AssertExpectations(t)
	})

	t.Run("missing coordinate fails validation", func(t *testing.T) {
		resolveUC := usecase.NewResolveUseCase(&MockHierarchyRepository{}, logger)
		uc := usecase.NewAddressUseCase(resolveUC, &MockAddressRepository{}, logger)

		_, err := uc.CreateFromPoint(ctx, &dto.CreateAddressRequest{
			Latitude: ptrFloat64(41.3),
		})
		require.Error(t, err)
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrInvalidRequest.Code, appErr.Code)
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		resolveUC := usecase.NewResolveUseCase(&MockHierarchyRepository{}, logger)
		uc := usecase.NewAddressUseCase(resolveUC, &MockAddressRepository{}, logger)

		_, err := uc.CreateFromPoint(ctx, &dto.CreateAddressRequest{
			Latitude:  ptrFloat64(95.0),
			Longitude: ptrFloat64(69.2),
		})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})
}
