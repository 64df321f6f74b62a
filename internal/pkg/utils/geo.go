package utils

import "math"

// ValidateCoordinates проверяет, что координаты конечны и в пределах WGS84
func ValidateCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
