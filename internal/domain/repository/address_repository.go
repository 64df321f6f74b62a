package repository

import (
	"context"

	"github.com/manzil-geoservice/internal/domain"
)

// AddressRepository определяет методы для работы с адресами
type AddressRepository interface {
	// Create сохраняет денормализованный снимок адреса
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)

	// GetByID возвращает адрес по ID
	GetByID(ctx context.Context, id string) (*domain.Address, error)
}
