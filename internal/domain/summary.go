package domain

// HierarchyStats - счётчики потомков одного узла дерева
type HierarchyStats struct {
	MahallaCount    int `json:"mahalla_count"`
	StreetCount     int `json:"street_count"`
	RealEstateCount int `json:"real_estate_count"`
}

// DistrictSummary - район со статистикой по его непосредственным потомкам
type DistrictSummary struct {
	ID     int64          `json:"id"`
	NameUz string         `json:"name_uz"`
	Code   string         `json:"code"`
	Stats  HierarchyStats `json:"stats"`
}

// RegionSummary - область со статистикой и вложенными районами
type RegionSummary struct {
	ID        int64             `json:"id"`
	NameUz    string            `json:"name_uz"`
	Code      string            `json:"code"`
	Stats     HierarchyStats    `json:"stats"`
	Districts []DistrictSummary `json:"districts"`
}

// LevelCounts - четвёрка счётчиков, отображаемая в панели статистики.
// Форма зависит от текущей глубины выбора (см. StatsUseCase).
type LevelCounts struct {
	Regions   int `json:"regions"`
	Districts int `json:"districts"`
	Mahallas  int `json:"mahallas"`
	Streets   int `json:"streets"`
}

// CountScope ограничивает счётную выборку регионом либо районом.
// Пустой scope означает все записи.
type CountScope struct {
	RegionID   *int64
	DistrictID *int64
}

// ScopeRegion возвращает scope по области
func ScopeRegion(id int64) CountScope {
	return CountScope{RegionID: &id}
}

// ScopeDistrict возвращает scope по району
func ScopeDistrict(id int64) CountScope {
	return CountScope{DistrictID: &id}
}
