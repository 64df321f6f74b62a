package domain

import (
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Point - координаты точки в EPSG:4326, порядок [lng, lat] как в GeoJSON
type Point struct {
	Lng float64 `json:"lng" db:"lng"`
	Lat float64 `json:"lat" db:"lat"`
}

// Region - область (вилоят), верхний уровень административной иерархии
type Region struct {
	ID        int64      `json:"id" db:"id"`
	NameUz    string     `json:"name_uz" db:"name_uz"`
	NameRu    *string    `json:"name_ru,omitempty" db:"name_ru"`
	Code      string     `json:"code" db:"code"`
	Geometry  []byte     `json:"-" db:"geometry"`
	Center    *Point     `json:"center,omitempty" db:"-"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// District - район (туман), принадлежит области
type District struct {
	ID        int64     `json:"id" db:"id"`
	NameUz    string    `json:"name_uz" db:"name_uz"`
	NameRu    *string   `json:"name_ru,omitempty" db:"name_ru"`
	Code      string    `json:"code" db:"code"`
	RegionID  int64     `json:"region_id" db:"region_id"`
	Geometry  []byte    `json:"-" db:"geometry"`
	Center    *Point    `json:"center,omitempty" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Mahalla - махалля, наименьшая административная единица района
type Mahalla struct {
	ID             int64   `json:"id" db:"id"`
	NameUz         string  `json:"name_uz" db:"name_uz"`
	NameRu         *string `json:"name_ru,omitempty" db:"name_ru"`
	Code           string  `json:"code" db:"code"`
	DistrictID     int64   `json:"district_id" db:"district_id"`
	Geometry       []byte  `json:"-" db:"geometry"`
	Center         *Point  `json:"center,omitempty" db:"-"`
	UzKadName      *string `json:"uzkad_name,omitempty" db:"uzkad_name"`
	GeoCode        *string `json:"geo_code,omitempty" db:"geo_code"`
	OneID          *string `json:"one_id,omitempty" db:"one_id"`
	Hidden         bool    `json:"hidden" db:"hidden"`
	MergedIntoID   *int64  `json:"merged_into_id,omitempty" db:"merged_into_id"`
	MergedIntoName *string `json:"merged_into_name,omitempty" db:"merged_into_name"`
}

// Street - улица. Геометрия всегда LineString, может быть не привязана к махалле
type Street struct {
	ID         int64   `json:"id" db:"id"`
	NameUz     string  `json:"name_uz" db:"name_uz"`
	NameRu     *string `json:"name_ru,omitempty" db:"name_ru"`
	Code       string  `json:"code" db:"code"`
	DistrictID int64   `json:"district_id" db:"district_id"`
	MahallaID  *int64  `json:"mahalla_id,omitempty" db:"mahalla_id"`
	Geometry   []byte  `json:"-" db:"geometry"`
	Center     *Point  `json:"center,omitempty" db:"-"`
	Type       *string `json:"type,omitempty" db:"type"`
	OldName    *string `json:"old_name,omitempty" db:"old_name"`
}

// MahallaAncestors - махалля вместе с сохранённой родительской цепочкой
type MahallaAncestors struct {
	Mahalla  *Mahalla
	District *District
	Region   *Region
}

// StreetAncestors - улица вместе с сохранённой родительской цепочкой.
// Mahalla может отсутствовать - улица не обязана принадлежать махалле.
type StreetAncestors struct {
	Street   *Street
	Mahalla  *Mahalla
	District *District
	Region   *Region
}

// DecodeGeometry парсит сырой GeoJSON в orb.Geometry
func DecodeGeometry(raw []byte) (orb.Geometry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, err
	}
	return g.Geometry(), nil
}
