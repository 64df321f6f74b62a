package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/manzil-geoservice/internal/domain"
)

// MockHierarchyRepository is a mock of HierarchyRepository
type MockHierarchyRepository struct {
	mock.Mock
}

func (m *MockHierarchyRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Region), args.Error(1)
}

func (m *MockHierarchyRepository) ListDistricts(ctx context.Context, regionID *int64) ([]domain.District, error) {
	args := m.Called(ctx, regionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *MockHierarchyRepository) ListMahallas(ctx context.Context, scope domain.CountScope) ([]domain.Mahalla, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mahalla), args.Error(1)
}

func (m *MockHierarchyRepository) ListStreets(ctx context.Context, scope domain.CountScope) ([]domain.Street, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Street), args.Error(1)
}

func (m *MockHierarchyRepository) ListRealEstate(ctx context.Context, districtID int64) ([]domain.RealEstate, error) {
	args := m.Called(ctx, districtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RealEstate), args.Error(1)
}

func (m *MockHierarchyRepository) CountRegions(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockHierarchyRepository) CountDistricts(ctx context.Context, scope domain.CountScope) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}

func (m *MockHierarchyRepository) CountMahallas(ctx context.Context, scope domain.CountScope) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}

func (m *MockHierarchyRepository) CountStreets(ctx context.Context, scope domain.CountScope) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}

func (m *MockHierarchyRepository) CountRealEstate(ctx context.Context, scope domain.CountScope) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}

func (m *MockHierarchyRepository) CountMahallasByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	args := m.Called(ctx, districtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockHierarchyRepository) CountStreetsByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	args := m.Called(ctx, districtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockHierarchyRepository) CountRealEstateByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	args := m.Called(ctx, districtIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockHierarchyRepository) GetRegionByID(ctx context.Context, id int64) (*domain.Region, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockHierarchyRepository) GetDistrictByID(ctx context.Context, id int64) (*domain.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockHierarchyRepository) GetMahallaWithAncestors(ctx context.Context, id int64) (*domain.MahallaAncestors, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MahallaAncestors), args.Error(1)
}

func (m *MockHierarchyRepository) GetStreetWithAncestors(ctx context.Context, id int64) (*domain.StreetAncestors, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreetAncestors), args.Error(1)
}

func (m *MockHierarchyRepository) SearchDashboard(ctx context.Context, query string, limit int) ([]domain.DashboardItem, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DashboardItem), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSummaryTree(ctx context.Context) ([]domain.RegionSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegionSummary), args.Error(1)
}

func (m *MockCacheRepository) SetSummaryTree(ctx context.Context, tree []domain.RegionSummary, ttl time.Duration) error {
	args := m.Called(ctx, tree, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteSummaryTree(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetTotals(ctx context.Context) (*domain.LevelCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelCounts), args.Error(1)
}

func (m *MockCacheRepository) SetTotals(ctx context.Context, totals *domain.LevelCounts, ttl time.Duration) error {
	args := m.Called(ctx, totals, ttl)
	return args.Error(0)
}

// MockAddressRepository is a mock of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockAddressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrFloat64(v float64) *float64 {
	return &v
}

// polyJSON строит GeoJSON-квадрат [minX,minY]..[maxX,maxY]
func polyJSON(minX, minY, maxX, maxY float64) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"Polygon","coordinates":[[[%[1]g,%[2]g],[%[1]g,%[4]g],[%[3]g,%[4]g],[%[3]g,%[2]g],[%[1]g,%[2]g]]]}`,
		minX, minY, maxX, maxY))
}
