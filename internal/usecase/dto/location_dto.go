package dto

// ResolvedUnit - минимальное представление найденной единицы иерархии
type ResolvedUnit struct {
	ID     int64  `json:"id"`
	NameUz string `json:"name_uz"`
}

// ResolvedMahalla дополнительно несёт SOATO-код - он нужен дашборду адресов
type ResolvedMahalla struct {
	ID     int64  `json:"id"`
	NameUz string `json:"name_uz"`
	Code   string `json:"code"`
}

// ResolvedLocation - результат точечного резолва. Поля либо отсутствуют,
// либо образуют согласованную цепочку предков; точка вне всех известных
// геометрий даёт пустой объект, не ошибку.
type ResolvedLocation struct {
	Street   *ResolvedUnit    `json:"street,omitempty"`
	Mahalla  *ResolvedMahalla `json:"mahalla,omitempty"`
	District *ResolvedUnit    `json:"district,omitempty"`
	Region   *ResolvedUnit    `json:"region,omitempty"`
}

// IsEmpty сообщает, что ни одна единица не содержит точку
func (l *ResolvedLocation) IsEmpty() bool {
	return l.Street == nil && l.Mahalla == nil && l.District == nil && l.Region == nil
}
