package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid or missing coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrRegionNotFound = New(
		"REGION_NOT_FOUND",
		"Region not found",
		http.StatusNotFound,
	)

	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found",
		http.StatusNotFound,
	)

	ErrMahallaNotFound = New(
		"MAHALLA_NOT_FOUND",
		"Mahalla not found",
		http.StatusNotFound,
	)

	ErrStreetNotFound = New(
		"STREET_NOT_FOUND",
		"Street not found",
		http.StatusNotFound,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Address not found",
		http.StatusNotFound,
	)

	ErrParentNotFound = New(
		"PARENT_NOT_FOUND",
		"Referenced parent entity does not exist",
		http.StatusNotFound,
	)

	ErrDuplicateCode = New(
		"DUPLICATE_CODE",
		"Entity with this code already exists",
		http.StatusConflict,
	)

	ErrHasChildren = New(
		"HAS_CHILDREN",
		"Entity has child entities and cannot be deleted",
		http.StatusConflict,
	)

	ErrGeometry = New(
		"GEOMETRY_ERROR",
		"Malformed geometry",
		http.StatusUnprocessableEntity,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)

	// ErrStaleComputation сигнализирует, что результат вычисления устарел -
	// его поколение было вытеснено более новым запросом. Вызывающая сторона
	// просто отбрасывает такой результат.
	ErrStaleComputation = New(
		"STALE_COMPUTATION",
		"Computation superseded by a newer request",
		http.StatusConflict,
	)
)
