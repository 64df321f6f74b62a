package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/manzil-geoservice/internal/domain"
	"github.com/manzil-geoservice/internal/domain/repository"
	apperrors "github.com/manzil-geoservice/internal/pkg/errors"
	"go.uber.org/zap"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type addressRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewAddressRepository создает новый экземпляр address repository
func NewAddressRepository(db *DB, logger *zap.Logger) repository.AddressRepository {
	return &addressRepository{
		db:     db,
		logger: logger,
	}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `
		INSERT INTO addresses (
			id, region_id, region_name, district_id, district_name,
			mahalla_id, mahalla_name, street_id, street_name,
			house_number, description, latitude, longitude
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		address.ID,
		address.RegionID, address.RegionName,
		address.DistrictID, address.DistrictName,
		address.MahallaID, address.MahallaName,
		address.StreetID, address.StreetName,
		address.HouseNumber, address.Description,
		address.Latitude, address.Longitude,
	).Scan(&address.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, apperrors.ErrDuplicateCode
			case pgForeignKeyViolation:
				return nil, apperrors.ErrParentNotFound
			}
		}
		r.logger.Error("failed to insert address", zap.Error(err))
		return nil, fmt.Errorf("create address: %w", err)
	}

	return address, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id string) (*domain.Address, error) {
	query := `
		SELECT id, region_id, region_name, district_id, district_name,
		       mahalla_id, mahalla_name, street_id, street_name,
		       house_number, description, latitude, longitude, created_at
		FROM addresses
		WHERE id = $1
	`

	var address domain.Address
	if err := r.db.GetContext(ctx, &address, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrAddressNotFound
		}
		return nil, fmt.Errorf("get address %s: %w", id, err)
	}
	return &address, nil
}
