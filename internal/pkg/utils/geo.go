package utils

import "math"

// EarthRadiusMeters is the mean Earth radius used for all distance computations.
const EarthRadiusMeters = 6371000.0

const (
	MinRadiusKm = 0.1
	MaxRadiusKm = 50.0
)

// HaversineDistance returns the great-circle distance between two points in meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// ValidateCoordinates reports whether lat/lon are finite degrees in range.
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateRadius reports whether radiusKm lies in the searchable range (0.1 - 50 km).
func ValidateRadius(radiusKm float64) bool {
	return radiusKm >= MinRadiusKm && radiusKm <= MaxRadiusKm
}

// Box is a latitude/longitude rectangle with MinLon <= MaxLon.
type Box struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// BoundingBox returns the boxes enclosing a circle of radiusKm around a point, used as a
// coarse pre-filter before the exact haversine check. A circle crossing the antimeridian
// yields two boxes, one on each side of it.
func BoundingBox(lat, lon, radiusKm float64) []Box {
	latDelta := radiusKm * 1000 / EarthRadiusMeters * 180 / math.Pi
	minLat, maxLat := math.Max(lat-latDelta, -90), math.Min(lat+latDelta, 90)

	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat <= 1e-9 || latDelta/cosLat >= 180 {
		return []Box{{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: 180}}
	}
	lonDelta := latDelta / cosLat

	minLon, maxLon := lon-lonDelta, lon+lonDelta
	switch {
	case minLon < -180:
		return []Box{
			{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: maxLon},
			{MinLat: minLat, MinLon: minLon + 360, MaxLat: maxLat, MaxLon: 180},
		}
	case maxLon > 180:
		return []Box{
			{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: 180},
			{MinLat: minLat, MinLon: -180, MaxLat: maxLat, MaxLon: maxLon - 360},
		}
	default:
		return []Box{{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon}}
	}
}
