package domain

import (
	"time"

	"github.com/google/uuid"
)

// Address - денормализованный снимок адреса. Имена и ID иерархии фиксируются
// в момент создания и никогда не обновляются при изменении справочников.
type Address struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RegionID     *int64    `json:"region_id,omitempty" db:"region_id"`
	RegionName   *string   `json:"region_name,omitempty" db:"region_name"`
	DistrictID   *int64    `json:"district_id,omitempty" db:"district_id"`
	DistrictName *string   `json:"district_name,omitempty" db:"district_name"`
	MahallaID    *int64    `json:"mahalla_id,omitempty" db:"mahalla_id"`
	MahallaName  *string   `json:"mahalla_name,omitempty" db:"mahalla_name"`
	StreetID     *int64    `json:"street_id,omitempty" db:"street_id"`
	StreetName   *string   `json:"street_name,omitempty" db:"street_name"`
	HouseNumber  *string   `json:"house_number,omitempty" db:"house_number"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Latitude     float64   `json:"latitude" db:"latitude"`
	Longitude    float64   `json:"longitude" db:"longitude"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RealEstate - объект недвижимости. Махалля привязана по имени, не по FK -
// так приходят данные кадастра.
type RealEstate struct {
	ID              int64   `json:"id" db:"id"`
	Owner           *string `json:"owner,omitempty" db:"owner"`
	Address         *string `json:"address,omitempty" db:"address"`
	Type            *string `json:"type,omitempty" db:"type"`
	DistrictID      int64   `json:"district_id" db:"district_id"`
	DistrictName    *string `json:"district_name,omitempty" db:"district_name"`
	StreetName      *string `json:"street_name,omitempty" db:"street_name"`
	HouseNumber     *string `json:"house_number,omitempty" db:"house_number"`
	CadastralNumber *string `json:"cadastral_number,omitempty" db:"cadastral_number"`
	Mahalla         *string `json:"mahalla,omitempty" db:"mahalla"`
	Geometry        []byte  `json:"-" db:"geometry"`
	Center          *Point  `json:"center,omitempty" db:"-"`
}
