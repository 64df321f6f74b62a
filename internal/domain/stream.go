package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с backend дашборда)
const (
	StreamAddressResolve = "stream:address:resolve"
	StreamAddressDone    = "stream:address:done"
)

// AddressResolveEvent - входящее событие на создание адреса по точке
type AddressResolveEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	HouseNumber *string   `json:"house_number,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// HasCoordinates проверяет наличие обеих координат
func (e *AddressResolveEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// AddressDoneEvent - результат создания адреса
type AddressDoneEvent struct {
	RequestID uuid.UUID `json:"request_id"`
	Address   *Address  `json:"address,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
