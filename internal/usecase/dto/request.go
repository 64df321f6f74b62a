package dto

// ResolveRequest - запрос точечного резолва координат
type ResolveRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// CreateAddressRequest - запрос на создание адреса по точке
type CreateAddressRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	HouseNumber *string  `json:"house_number,omitempty" validate:"omitempty,max=32"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=512"`
}

// SearchRequest - запрос табличного поиска по всем типам сущностей
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}
