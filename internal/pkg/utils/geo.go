package utils

import (
	"math"

	"github.com/trip-recommender/internal/domain"
)

const (
	earthRadiusKm  = 6371.0
	kmPerDegreeLat = 111.0

	// minCosLat - порог, ниже которого долготная дельта считается вырожденной
	minCosLat = 1e-6
)

// HaversineDistance вычисляет расстояние между двумя точками в километрах.
// Дельта долготы берётся как есть, без нормализации в кратчайшую дугу:
// для точек по разные стороны меридиана ±180° расстояние завышается.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// BoundingBoxAround строит прямоугольник вокруг точки с радиусом radiusKm.
// Это грубый O(1) префильтр (локально плоская аппроксимация, 111 км ≈ 1°
// широты); вызывается всегда с радиусом target+tolerance, а не с голой
// целевой дистанцией.
func BoundingBoxAround(center domain.Point, radiusKm float64) domain.BoundingBox {
	deltaLat := radiusKm / kmPerDegreeLat

	box := domain.BoundingBox{
		MinLat: center.Lat - deltaLat,
		MaxLat: center.Lat + deltaLat,
		MinLon: -180,
		MaxLon: 180,
	}

	// У полюсов cos(lat) стремится к нулю; вместо деления на ~0 оставляем
	// полный диапазон долгот
	cosLat := math.Cos(center.Lat * math.Pi / 180.0)
	if cosLat > minCosLat {
		deltaLon := radiusKm / (kmPerDegreeLat * cosLat)
		if deltaLon < 360 {
			box.MinLon = center.Lon - deltaLon
			box.MaxLon = center.Lon + deltaLon
		}
	}

	return box
}
