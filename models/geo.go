package models

import "math"

// degrees of latitude per kilometer, and the base for the longitude
// correction at a given latitude
const kmPerDegree = 111.0

// BoundingBox is an axis-aligned rectangle around a point, used as a
// cheap stand-in for a circular radius filter. It over-selects near the
// corners; callers needing exact membership must post-filter by true
// distance.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// NewBoundingBox builds the box for radiusKm kilometers around (lat, lng).
func NewBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / kmPerDegree
	lngDelta := radiusKm / (kmPerDegree * math.Cos(lat*math.Pi/180))
	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}
