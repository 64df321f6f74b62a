// Package geo содержит чистые геометрические примитивы сервиса.
package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PointInRing проверяет вхождение точки во внешнее кольцо методом ray casting:
// луч из точки вправо, подсчёт пересечений с рёбрами кольца. Точка ровно на
// ребре или вершине даёт неопределённую чётность - это допустимо.
func PointInRing(pt orb.Point, ring orb.Ring) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]

		if ((yi > pt[1]) != (yj > pt[1])) &&
			(pt[0] < (xj-xi)*(pt[1]-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// PointInGeometry проверяет вхождение точки в геометрию.
//
// Для Polygon проверяется только внешнее кольцо: дырки (внутренние кольца)
// не вычитаются. Анклавы внутри "бубликов" будут отнесены к внешней границе -
// известное ограничение. Для MultiPolygon точка считается внутри, если она
// внутри внешнего кольца любого из составных полигонов. Любой другой тип
// геометрии (включая LineString улиц) даёт false.
func PointInGeometry(pt orb.Point, g orb.Geometry) bool {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) == 0 {
			return false
		}
		return PointInRing(pt, geom[0])
	case orb.MultiPolygon:
		for _, poly := range geom {
			if len(poly) == 0 {
				continue
			}
			if PointInRing(pt, poly[0]) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// PointInRawGeometry парсит сырой GeoJSON и проверяет вхождение точки.
// Ошибка парсинга возвращается вызывающему - он решает, считать ли её
// промахом (резолвер изолирует такие ошибки per-entity).
func PointInRawGeometry(pt orb.Point, raw []byte) (bool, error) {
	if len(raw) == 0 {
		return false, nil
	}
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return false, err
	}
	return PointInGeometry(pt, g.Geometry()), nil
}
