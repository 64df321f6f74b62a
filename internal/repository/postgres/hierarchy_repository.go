package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	apperrors "github.com/manzil-geoservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type hierarchyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewHierarchyRepository создает новый экземпляр hierarchy repository
func NewHierarchyRepository(db *DB, logger *zap.Logger) repository.HierarchyRepository {
	return &hierarchyRepository{
		db:     db,
		logger: logger,
	}
}

// regionRow - строка таблицы regions с плоскими колонками центра
type regionRow struct {
	domain.Region
	CenterLng *float64 `db:"center_lng"`
	CenterLat *float64 `db:"center_lat"`
}

type districtRow struct {
	domain.District
	CenterLng *float64 `db:"center_lng"`
	CenterLat *float64 `db:"center_lat"`
}

type mahallaRow struct {
	domain.Mahalla
	CenterLng *float64 `db:"center_lng"`
	CenterLat *float64 `db:"center_lat"`
}

type streetRow struct {
	domain.Street
	CenterLng *float64 `db:"center_lng"`
	CenterLat *float64 `db:"center_lat"`
}

type realEstateRow struct {
	domain.RealEstate
	CenterLng *float64 `db:"center_lng"`
	CenterLat *float64 `db:"center_lat"`
}

func centerPoint(lng, lat *float64) *domain.Point {
	if lng == nil || lat == nil {
		return nil
	}
	return &domain.Point{Lng: *lng, Lat: *lat}
}

func (r *hierarchyRepository) ListRegions(ctx context.Context) ([]domain.Region, error) {
	query := `
		SELECT id, name_uz, name_ru, code, geometry, center_lng, center_lat,
		       created_at, updated_at
		FROM regions
		ORDER BY name_uz ASC
	`

	var rows []regionRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}

	regions := make([]domain.Region, 0, len(rows))
	for _, row := range rows {
		region := row.Region
		region.Center = centerPoint(row.CenterLng, row.CenterLat)
		regions = append(regions, region)
	}
	return regions, nil
}

func (r *hierarchyRepository) ListDistricts(ctx context.Context, regionID *int64) ([]domain.District, error) {
	query := `
		SELECT id, name_uz, name_ru, code, region_id, geometry,
		       center_lng, center_lat, created_at, updated_at
		FROM districts
		WHERE ($1::bigint IS NULL OR region_id = $1)
		ORDER BY name_uz ASC
	`

	var rows []districtRow
	if err := r.db.SelectContext(ctx, &rows, query, regionID); err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}

	districts := make([]domain.District, 0, len(rows))
	for _, row := range rows {
		district := row.District
		district.Center = centerPoint(row.CenterLng, row.CenterLat)
		districts = append(districts, district)
	}
	return districts, nil
}

func (r *hierarchyRepository) ListMahallas(ctx context.Context, scope domain.CountScope) ([]domain.Mahalla, error) {
	// Скрытые махалли включаются намеренно: резолвер должен находить их
	// для исторических точечных запросов
	query := `
		SELECT m.id, m.name_uz, m.name_ru, m.code, m.district_id, m.geometry,
		       m.center_lng, m.center_lat, m.uzkad_name, m.geo_code, m.one_id,
		       m.hidden, m.merged_into_id, m.merged_into_name
		FROM mahallas m
		JOIN districts d ON d.id = m.district_id
		WHERE ($1::bigint IS NULL OR d.region_id = $1)
		  AND ($2::bigint IS NULL OR m.district_id = $2)
		ORDER BY m.name_uz ASC
	`

	var rows []mahallaRow
	if err := r.db.SelectContext(ctx, &rows, query, scope.RegionID, scope.DistrictID); err != nil {
		return nil, fmt.Errorf("list mahallas: %w", err)
	}

	mahallas := make([]domain.Mahalla, 0, len(rows))
	for _, row := range rows {
		mahalla := row.Mahalla
		mahalla.Center = centerPoint(row.CenterLng, row.CenterLat)
		mahallas = append(mahallas, mahalla)
	}
	return mahallas, nil
}

func (r *hierarchyRepository) ListStreets(ctx context.Context, scope domain.CountScope) ([]domain.Street, error) {
	query := `
		SELECT s.id, s.name_uz, s.name_ru, s.code, s.district_id, s.mahalla_id,
		       s.geometry, s.center_lng, s.center_lat, s.type, s.old_name
		FROM streets s
		JOIN districts d ON d.id = s.district_id
		WHERE ($1::bigint IS NULL OR d.region_id = $1)
		  AND ($2::bigint IS NULL OR s.district_id = $2)
		ORDER BY s.name_uz ASC
	`

	var rows []streetRow
	if err := r.db.SelectContext(ctx, &rows, query, scope.RegionID, scope.DistrictID); err != nil {
		return nil, fmt.Errorf("list streets: %w", err)
	}

	streets := make([]domain.Street, 0, len(rows))
	for _, row := range rows {
		street := row.Street
		street.Center = centerPoint(row.CenterLng, row.CenterLat)
		streets = append(streets, street)
	}
	return streets, nil
}

func (r *hierarchyRepository) ListRealEstate(ctx context.Context, districtID int64) ([]domain.RealEstate, error) {
	query := `
		SELECT id, owner, address, type, district_id, district_name,
		       street_name, house_number, cadastral_number, mahalla,
		       geometry, center_lng, center_lat
		FROM real_estates
		WHERE district_id = $1
		ORDER BY id ASC
	`

	var rows []realEstateRow
	if err := r.db.SelectContext(ctx, &rows, query, districtID); err != nil {
		return nil, fmt.Errorf("list real estate: %w", err)
	}

	items := make([]domain.RealEstate, 0, len(rows))
	for _, row := range rows {
		item := row.RealEstate
		item.Center = centerPoint(row.CenterLng, row.CenterLat)
		items = append(items, item)
	}
	return items, nil
}

func (r *hierarchyRepository) CountRegions(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM regions`); err != nil {
		return 0, fmt.Errorf("count regions: %w", err)
	}
	return count, nil
}

func (r *hierarchyRepository) CountDistricts(ctx context.Context, scope domain.CountScope) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM districts
		WHERE ($1::bigint IS NULL OR region_id = $1)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, scope.RegionID); err != nil {
		return 0, fmt.Errorf("count districts: %w", err)
	}
	return count, nil
}

func (r *hierarchyRepository) CountMahallas(ctx context.Context, scope domain.CountScope) (int, error) {
	// В счётчиках участвуют только активные махалли
	query := `
		SELECT COUNT(*)
		FROM mahallas m
		JOIN districts d ON d.id = m.district_id
		WHERE m.hidden = FALSE
		  AND ($1::bigint IS NULL OR d.region_id = $1)
		  AND ($2::bigint IS NULL OR m.district_id = $2)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, scope.RegionID, scope.DistrictID); err != nil {
		return 0, fmt.Errorf("count mahallas: %w", err)
	}
	return count, nil
}

func (r *hierarchyRepository) CountStreets(ctx context.Context, scope domain.CountScope) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM streets s
		JOIN districts d ON d.id = s.district_id
		WHERE ($1::bigint IS NULL OR d.region_id = $1)
		  AND ($2::bigint IS NULL OR s.district_id = $2)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, scope.RegionID, scope.DistrictID); err != nil {
		return 0, fmt.Errorf("count streets: %w", err)
	}
	return count, nil
}

func (r *hierarchyRepository) CountRealEstate(ctx context.Context, scope domain.CountScope) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM real_estates re
		JOIN districts d ON d.id = re.district_id
		WHERE ($1::bigint IS NULL OR d.region_id = $1)
		  AND ($2::bigint IS NULL OR re.district_id = $2)
	`

	var count int
	if err := r.db.GetContext(ctx, &count, query, scope.RegionID, scope.DistrictID); err != nil {
		return 0, fmt.Errorf("count real estate: %w", err)
	}
	return count, nil
}

// groupedCount выполняет один сгруппированный счётный запрос по district_id
func (r *hierarchyRepository) groupedCount(ctx context.Context, query string, districtIDs []int64) (map[int64]int, error) {
	result := make(map[int64]int, len(districtIDs))
	if len(districtIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(districtIDs))
	if err != nil {
		return nil, fmt.Errorf("grouped count: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var districtID int64
		var count int
		if err := rows.Scan(&districtID, &count); err != nil {
			return nil, fmt.Errorf("scan grouped count: %w", err)
		}
		result[districtID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("grouped count rows error: %w", err)
	}
	return result, nil
}

func (r *hierarchyRepository) CountMahallasByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	query := `
		SELECT district_id, COUNT(*)
		FROM mahallas
		WHERE hidden = FALSE AND district_id = ANY($1)
		GROUP BY district_id
	`
	return r.groupedCount(ctx, query, districtIDs)
}

func (r *hierarchyRepository) CountStreetsByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	query := `
		SELECT district_id, COUNT(*)
		FROM streets
		WHERE district_id = ANY($1)
		GROUP BY district_id
	`
	return r.groupedCount(ctx, query, districtIDs)
}

func (r *hierarchyRepository) CountRealEstateByDistricts(ctx context.Context, districtIDs []int64) (map[int64]int, error) {
	query := `
		SELECT district_id, COUNT(*)
		FROM real_estates
		WHERE district_id = ANY($1)
		GROUP BY district_id
	`
	return r.groupedCount(ctx, query, districtIDs)
}

func (r *hierarchyRepository) GetRegionByID(ctx context.Context, id int64) (*domain.Region, error) {
	query := `
		SELECT id, name_uz, name_ru, code, geometry, center_lng, center_lat,
		       created_at, updated_at
		FROM regions
		WHERE id = $1
	`

	var row regionRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrRegionNotFound
		}
		return nil, fmt.Errorf("get region %d: %w", id, err)
	}

	region := row.Region
	region.Center = centerPoint(row.CenterLng, row.CenterLat)
	return &region, nil
}

func (r *hierarchyRepository) GetDistrictByID(ctx context.Context, id int64) (*domain.District, error) {
	query := `
		SELECT id, name_uz, name_ru, code, region_id, geometry,
		       center_lng, center_lat, created_at, updated_at
		FROM districts
		WHERE id = $1
	`

	var row districtRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDistrictNotFound
		}
		return nil, fmt.Errorf("get district %d: %w", id, err)
	}

	district := row.District
	district.Center = centerPoint(row.CenterLng, row.CenterLat)
	return &district, nil
}

func (r *hierarchyRepository) GetMahallaWithAncestors(ctx context.Context, id int64) (*domain.MahallaAncestors, error) {
	query := `
		SELECT m.id AS m_id, m.name_uz AS m_name_uz, m.code AS m_code,
		       m.district_id AS m_district_id, m.hidden AS m_hidden,
		       d.id AS d_id, d.name_uz AS d_name_uz, d.code AS d_code,
		       d.region_id AS d_region_id,
		       r.id AS r_id, r.name_uz AS r_name_uz, r.code AS r_code
		FROM mahallas m
		JOIN districts d ON d.id = m.district_id
		JOIN regions r ON r.id = d.region_id
		WHERE m.id = $1
	`

	var row struct {
		MID         int64  `db:"m_id"`
		MNameUz     string `db:"m_name_uz"`
		MCode       string `db:"m_code"`
		MDistrictID int64  `db:"m_district_id"`
		MHidden     bool   `db:"m_hidden"`
		DID         int64  `db:"d_id"`
		DNameUz     string `db:"d_name_uz"`
		DCode       string `db:"d_code"`
		DRegionID   int64  `db:"d_region_id"`
		RID         int64  `db:"r_id"`
		RNameUz     string `db:"r_name_uz"`
		RCode       string `db:"r_code"`
	}
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrMahallaNotFound
		}
		return nil, fmt.Errorf("get mahalla ancestors %d: %w", id, err)
	}

	return &domain.MahallaAncestors{
		Mahalla: &domain.Mahalla{
			ID: row.MID, NameUz: row.MNameUz, Code: row.MCode,
			DistrictID: row.MDistrictID, Hidden: row.MHidden,
		},
		District: &domain.District{
			ID: row.DID, NameUz: row.DNameUz, Code: row.DCode, RegionID: row.DRegionID,
		},
		Region: &domain.Region{
			ID: row.RID, NameUz: row.RNameUz, Code: row.RCode,
		},
	}, nil
}

func (r *hierarchyRepository) GetStreetWithAncestors(ctx context.Context, id int64) (*domain.StreetAncestors, error) {
	// Махалля у улицы опциональна - LEFT JOIN
	query := `
		SELECT s.id AS s_id, s.name_uz AS s_name_uz, s.code AS s_code,
		       s.district_id AS s_district_id, s.mahalla_id AS s_mahalla_id,
		       m.id AS m_id, m.name_uz AS m_name_uz, m.code AS m_code,
		       d.id AS d_id, d.name_uz AS d_name_uz, d.code AS d_code,
		       d.region_id AS d_region_id,
		       r.id AS r_id, r.name_uz AS r_name_uz, r.code AS r_code
		FROM streets s
		LEFT JOIN mahallas m ON m.id = s.mahalla_id
		JOIN districts d ON d.id = s.district_id
		JOIN regions r ON r.id = d.region_id
		WHERE s.id = $1
	`

	var row struct {
		SID         int64   `db:"s_id"`
		SNameUz     string  `db:"s_name_uz"`
		SCode       string  `db:"s_code"`
		SDistrictID int64   `db:"s_district_id"`
		SMahallaID  *int64  `db:"s_mahalla_id"`
		MID         *int64  `db:"m_id"`
		MNameUz     *string `db:"m_name_uz"`
		MCode       *string `db:"m_code"`
		DID         int64   `db:"d_id"`
		DNameUz     string  `db:"d_name_uz"`
		DCode       string  `db:"d_code"`
		DRegionID   int64   `db:"d_region_id"`
		RID         int64   `db:"r_id"`
		RNameUz     string  `db:"r_name_uz"`
		RCode       string  `db:"r_code"`
	}
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStreetNotFound
		}
		return nil, fmt.Errorf("get street ancestors %d: %w", id, err)
	}

	result := &domain.StreetAncestors{
		Street: &domain.Street{
			ID: row.SID, NameUz: row.SNameUz, Code: row.SCode,
			DistrictID: row.SDistrictID, MahallaID: row.SMahallaID,
		},
		District: &domain.District{
			ID: row.DID, NameUz: row.DNameUz, Code: row.DCode, RegionID: row.DRegionID,
		},
		Region: &domain.Region{
			ID: row.RID, NameUz: row.RNameUz, Code: row.RCode,
		},
	}
	if row.MID != nil {
		result.Mahalla = &domain.Mahalla{
			ID: *row.MID, NameUz: *row.MNameUz, Code: *row.MCode,
			DistrictID: row.DID,
		}
	}
	return result, nil
}

func (r *hierarchyRepository) SearchDashboard(ctx context.Context, query string, limit int) ([]domain.DashboardItem, error) {
	// UNION по четырём таблицам с дискриминантом kind; поиск по name_uz и
	// name_ru без учёта регистра
	sqlQuery := `
		SELECT kind, id, name_uz, code FROM (
			SELECT 'region' AS kind, id, name_uz, name_ru, code FROM regions
			UNION ALL
			SELECT 'district', id, name_uz, name_ru, code FROM districts
			UNION ALL
			SELECT 'mahalla', id, name_uz, name_ru, code FROM mahallas WHERE hidden = FALSE
			UNION ALL
			SELECT 'street', id, name_uz, name_ru, code FROM streets
		) items
		WHERE name_uz ILIKE '%' || $1 || '%'
		   OR name_ru ILIKE '%' || $1 || '%'
		   OR code = $1
		ORDER BY name_uz ASC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, sqlQuery, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search dashboard: %w", err)
	}
	defer rows.Close()

	items := make([]domain.DashboardItem, 0, limit)
	for rows.Next() {
		var kind, nameUz, code string
		var id int64
		if err := rows.Scan(&kind, &id, &nameUz, &code); err != nil {
			return nil, fmt.Errorf("scan dashboard item: %w", err)
		}

		switch domain.DashboardKind(kind) {
		case domain.KindRegion:
			items = append(items, domain.DashboardItem{
				Kind:   domain.KindRegion,
				Region: &domain.Region{ID: id, NameUz: nameUz, Code: code},
			})
		case domain.KindDistrict:
			items = append(items, domain.DashboardItem{
				Kind:     domain.KindDistrict,
				District: &domain.District{ID: id, NameUz: nameUz, Code: code},
			})
		case domain.KindMahalla:
			items = append(items, domain.DashboardItem{
				Kind:    domain.KindMahalla,
				Mahalla: &domain.Mahalla{ID: id, NameUz: nameUz, Code: code},
			})
		case domain.KindStreet:
			items = append(items, domain.DashboardItem{
				Kind:   domain.KindStreet,
				Street: &domain.Street{ID: id, NameUz: nameUz, Code: code},
			})
		default:
			r.logger.Warn("unexpected dashboard kind", zap.String("kind", kind))
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard rows error: %w", err)
	}
	return items, nil
}
