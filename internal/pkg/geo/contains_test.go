package geo_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"

	"github.com/manzil-geoservice/internal/pkg/geo"
)

func square(minX, minY, maxX, maxY float64) orb.Ring {
	return orb.Ring{
		{minX, minY}, {minX, maxY}, {maxX, maxY}, {maxX, minY}, {minX, minY},
	}
}

func TestPointInRing(t *testing.T) {
	ring := square(0, 0, 2, 2)

	t.Run("strictly inside", func(t *testing.T) {
		assert.True(t, geo.PointInRing(orb.Point{1, 1}, ring))
	})

	t.Run("strictly outside", func(t *testing.T) {
		assert.False(t, geo.PointInRing(orb.Point{3, 3}, ring))
		assert.False(t, geo.PointInRing(orb.Point{-1, 1}, ring))
	})

	t.Run("triangle ccw", func(t *testing.T) {
		tri := orb.Ring{{0, 0}, {4, 0}, {2, 3}, {0, 0}}
		assert.True(t, geo.PointInRing(orb.Point{2, 1}, tri))
		assert.False(t, geo.PointInRing(orb.Point{0.1, 2.9}, tri))
	})

	t.Run("degenerate ring", func(t *testing.T) {
		assert.False(t, geo.PointInRing(orb.Point{1, 1}, orb.Ring{{0, 0}, {1, 1}}))
		assert.False(t, geo.PointInRing(orb.Point{1, 1}, nil))
	})
}

func TestPointInGeometry(t *testing.T) {
	t.Run("polygon uses exterior ring only", func(t *testing.T) {
		// Полигон с дыркой в центре: точка в дырке всё равно считается
		// внутри - дырки не вычитаются
		poly := orb.Polygon{
			square(0, 0, 10, 10),
			square(4, 4, 6, 6),
		}
		assert.True(t, geo.PointInGeometry(orb.Point{5, 5}, poly))
		assert.True(t, geo.PointInGeometry(orb.Point{1, 1}, poly))
		assert.False(t, geo.PointInGeometry(orb.Point{11, 5}, poly))
	})

	t.Run("multipolygon disjoint squares", func(t *testing.T) {
		mp := orb.MultiPolygon{
			{square(0, 0, 2, 2)},
			{square(10, 10, 12, 12)},
		}
		assert.True(t, geo.PointInGeometry(orb.Point{1, 1}, mp))
		assert.True(t, geo.PointInGeometry(orb.Point{11, 11}, mp))
		// Точка между квадратами
		assert.False(t, geo.PointInGeometry(orb.Point{5, 5}, mp))
	})

	t.Run("linestring never matches", func(t *testing.T) {
		ls := orb.LineString{{0, 0}, {5, 5}, {10, 0}}
		assert.False(t, geo.PointInGeometry(orb.Point{5, 5}, ls))
	})

	t.Run("empty geometry", func(t *testing.T) {
		assert.False(t, geo.PointInGeometry(orb.Point{1, 1}, orb.Polygon{}))
		assert.False(t, geo.PointInGeometry(orb.Point{1, 1}, orb.MultiPolygon{}))
	})
}

func TestPointInRawGeometry(t *testing.T) {
	t.Run("valid polygon json", func(t *testing.T) {
		raw := []byte(`{"type":"Polygon","coordinates":[[[0,0],[0,2],[2,2],[2,0],[0,0]]]}`)
		in, err := geo.PointInRawGeometry(orb.Point{1, 1}, raw)
		assert.NoError(t, err)
		assert.True(t, in)

		out, err := geo.PointInRawGeometry(orb.Point{3, 3}, raw)
		assert.NoError(t, err)
		assert.False(t, out)
	})

	t.Run("malformed json returns error not panic", func(t *testing.T) {
		in, err := geo.PointInRawGeometry(orb.Point{1, 1}, []byte(`{"type":"Polygon"`))
		assert.Error(t, err)
		assert.False(t, in)
	})

	t.Run("empty geometry is a miss", func(t *testing.T) {
		in, err := geo.PointInRawGeometry(orb.Point{1, 1}, nil)
		assert.NoError(t, err)
		assert.False(t, in)
	})
}
