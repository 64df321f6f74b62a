package domain

// DrillLevel - текущий уровень навигации по карте
type DrillLevel string

const (
	LevelRegions   DrillLevel = "regions"
	LevelDistricts DrillLevel = "districts"
	LevelMahallas  DrillLevel = "mahallas"
)

// Пороги зума для автоматической навигации. Порог выхода на единицу ниже
// порога входа - гистерезис против осцилляции на границе.
const (
	DefaultZoomEnterMahallas = 13.0
	DefaultZoomExitMahallas  = 12.0
)

// Selection - текущий выбор пользователя в иерархии
type Selection struct {
	Region   *Region
	District *District
}

// Viewport - состояние камеры карты после жеста пользователя
type Viewport struct {
	Center Point
	Zoom   float64
}

// MapLayerStore - явный снимок загруженных слоёв карты. Передаётся в каждый
// переход навигации и возвращается из него, вместо свободно висящих
// мутабельных ссылок на слои.
type MapLayerStore struct {
	Level      DrillLevel   `json:"level"`
	Regions    []Region     `json:"regions,omitempty"`
	Districts  []District   `json:"districts,omitempty"`
	Mahallas   []Mahalla    `json:"mahallas,omitempty"`
	Streets    []Street     `json:"streets,omitempty"`
	RealEstate []RealEstate `json:"real_estate,omitempty"`
}
