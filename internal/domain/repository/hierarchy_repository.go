package repository

import (
	"context"

	"github.com/manzil-geoservice/internal/domain"
)

// HierarchyRepository определяет методы чтения административной иерархии.
// Все списковые методы возвращают записи, отсортированные по name_uz ASC -
// единый контракт сортировки для всего домена.
type HierarchyRepository interface {
	// ListRegions возвращает все области с геометрией и центром
	ListRegions(ctx context.Context) ([]domain.Region, error)

	// ListDistricts возвращает районы; regionID == nil - все районы
	ListDistricts(ctx context.Context, regionID *int64) ([]domain.District, error)

	// ListMahallas возвращает махалли, включая скрытые (hidden) - они нужны
	// резолверу для исторических точечных запросов
	ListMahallas(ctx context.Context, scope domain.CountScope) ([]domain.Mahalla, error)

	// ListStreets возвращает улицы в рамках области либо района
	ListStreets(ctx context.Context, scope domain.CountScope) ([]domain.Street, error)

	// ListRealEstate возвращает объекты недвижимости района
	ListRealEstate(ctx context.Context, districtID int64) ([]domain.RealEstate, error)

	// CountRegions / CountDistricts - глобальные счётчики для режима без выбора
	CountRegions(ctx context.Context) (int, error)
	CountDistricts(ctx context.Context, scope domain.CountScope) (int, error)

	// CountMahallas считает активные (не скрытые) махалли в scope
	CountMahallas(ctx context.Context, scope domain.CountScope) (int, error)

	// CountStreets считает улицы в scope
	CountStreets(ctx context.Context, scope domain.CountScope) (int, error)

	// CountRealEstate считает объекты недвижимости в scope
	CountRealEstate(ctx context.Context, scope domain.CountScope) (int, error)

	// CountMahallasByDistricts возвращает счётчики активных махаллей,
	// сгруппированные по district_id, одним запросом
	CountMahallasByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error)

	// CountStreetsByDistricts - то же для улиц
	CountStreetsByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error)

	// CountRealEstateByDistricts - то же для недвижимости
	CountRealEstateByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error)

	// GetRegionByID возвращает область по ID
	GetRegionByID(ctx context.Context, id int64) (*domain.Region, error)

	// GetDistrictByID возвращает район по ID
	GetDistrictByID(ctx context.Context, id int64) (*domain.District, error)

	// GetMahallaWithAncestors возвращает махаллю с сохранённой цепочкой
	// район -> область из реляционных связей
	GetMahallaWithAncestors(ctx context.Context, id int64) (*domain.MahallaAncestors, error)

	// GetStreetWithAncestors возвращает улицу с цепочкой
	// махалля? -> район -> область
	GetStreetWithAncestors(ctx context.Context, id int64) (*domain.StreetAncestors, error)

	// SearchDashboard выполняет поиск по имени среди всех четырёх типов
	// сущностей для табличного дашборда
	SearchDashboard(ctx context.Context, query string, limit int) ([]domain.DashboardItem, error)
}
