package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundingBoxDeltas(t *testing.T) {
	lat, lng, radius := 37.5665, 126.9780, 5.0

	box := NewBoundingBox(lat, lng, radius)

	wantLatDelta := radius / 111.0
	wantLngDelta := radius / (111.0 * math.Cos(lat*math.Pi/180))

	assert.InDelta(t, lat-wantLatDelta, box.MinLat, 1e-9)
	assert.InDelta(t, lat+wantLatDelta, box.MaxLat, 1e-9)
	assert.InDelta(t, lng-wantLngDelta, box.MinLng, 1e-9)
	assert.InDelta(t, lng+wantLngDelta, box.MaxLng, 1e-9)
}

func TestBoundingBoxContains(t *testing.T) {
	box := NewBoundingBox(37.5665, 126.9780, 5)

	assert.True(t, box.Contains(37.5665, 126.9780))
	assert.False(t, box.Contains(38.0, 126.9780))
	assert.False(t, box.Contains(37.5665, 128.0))

	// A corner point is inside the box even though it lies farther than
	// the radius from the center. The rectangle intentionally
	// over-selects.
	assert.True(t, box.Contains(box.MaxLat, box.MaxLng))
	cornerKm := haversineKm(37.5665, 126.9780, box.MaxLat, box.MaxLng)
	assert.Greater(t, cornerKm, 5.0)
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
