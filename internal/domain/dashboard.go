package domain

// DashboardKind - явный дискриминант типа записи в табличном дашборде
type DashboardKind string

const (
	KindRegion   DashboardKind = "region"
	KindDistrict DashboardKind = "district"
	KindMahalla  DashboardKind = "mahalla"
	KindStreet   DashboardKind = "street"
)

// DashboardItem - размеченное объединение четырёх типов сущностей для общего
// табличного представления. Ровно одно из полей-указателей непустое,
// соответственно Kind.
type DashboardItem struct {
	Kind     DashboardKind `json:"kind"`
	Region   *Region       `json:"region,omitempty"`
	District *District     `json:"district,omitempty"`
	Mahalla  *Mahalla      `json:"mahalla,omitempty"`
	Street   *Street       `json:"street,omitempty"`
}

// NameUz возвращает отображаемое имя вне зависимости от типа записи
func (it DashboardItem) NameUz() string {
	switch it.Kind {
	case KindRegion:
		return it.Region.NameUz
	case KindDistrict:
		return it.District.NameUz
	case KindMahalla:
		return it.Mahalla.NameUz
	case KindStreet:
		return it.Street.NameUz
	}
	return ""
}

// Code возвращает SOATO-код записи
func (it DashboardItem) Code() string {
	switch it.Kind {
	case KindRegion:
		return it.Region.Code
	case KindDistrict:
		return it.District.Code
	case KindMahalla:
		return it.Mahalla.Code
	case KindStreet:
		return it.Street.Code
	}
	return ""
}
