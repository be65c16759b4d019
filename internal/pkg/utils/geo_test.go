package utils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/branch-finder/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Equal(t, 0.0, utils.HaversineDistance(49.9929, 8.2473, 49.9929, 8.2473))
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := utils.HaversineDistance(49.9929, 8.2473, 50.1109, 8.6821)
		ba := utils.HaversineDistance(50.1109, 8.6821, 49.9929, 8.2473)
		assert.InDelta(t, ab, ba, 1e-6)
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		assert.InDelta(t, 111194.93, utils.HaversineDistance(0, 0, 1, 0), 0.5)
		assert.InDelta(t, 111194.93, utils.HaversineDistance(50, 8, 51, 8), 0.5)
	})

	t.Run("Mainz to Frankfurt", func(t *testing.T) {
		assert.InDelta(t, 33702.6, utils.HaversineDistance(49.9929, 8.2473, 50.1109, 8.6821), 1)
	})

	t.Run("never negative", func(t *testing.T) {
		d := utils.HaversineDistance(-33.8688, 151.2093, 51.5074, -0.1278)
		assert.Greater(t, d, 0.0)
		assert.False(t, math.IsNaN(d))
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(49.9929, 8.2473))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
	assert.False(t, utils.ValidateCoordinates(math.NaN(), 0))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(0.1))
	assert.True(t, utils.ValidateRadius(50))
	assert.False(t, utils.ValidateRadius(0.05))
	assert.False(t, utils.ValidateRadius(50.1))
}

func TestBoundingBox(t *testing.T) {
	boxes := utils.BoundingBox(49.9929, 8.2473, 5)
	require.Len(t, boxes, 1)
	b := boxes[0]

	assert.Less(t, b.MinLat, 49.9929)
	assert.Greater(t, b.MaxLat, 49.9929)
	assert.Less(t, b.MinLon, 8.2473)
	assert.Greater(t, b.MaxLon, 8.2473)

	// Every edge of the box is at least the radius away along its axis.
	assert.GreaterOrEqual(t, utils.HaversineDistance(49.9929, 8.2473, b.MaxLat, 8.2473), 4999.0)
	assert.GreaterOrEqual(t, utils.HaversineDistance(49.9929, 8.2473, 49.9929, b.MaxLon), 4999.0)
	assert.GreaterOrEqual(t, utils.HaversineDistance(49.9929, 8.2473, b.MinLat, 8.2473), 4999.0)
	assert.GreaterOrEqual(t, utils.HaversineDistance(49.9929, 8.2473, 49.9929, b.MinLon), 4999.0)
}

func TestBoundingBox_Antimeridian(t *testing.T) {
	inside := func(boxes []utils.Box, lat, lon float64) bool {
		for _, b := range boxes {
			if lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon {
				return true
			}
		}
		return false
	}

	t.Run("east edge", func(t *testing.T) {
		boxes := utils.BoundingBox(-17.8, 179.9, 50)
		require.Len(t, boxes, 2)
		// 20 km away on the other side of the antimeridian.
		require.Less(t, utils.HaversineDistance(-17.8, 179.9, -17.8, -179.93), 50000.0)
		assert.True(t, inside(boxes, -17.8, -179.93))
		assert.True(t, inside(boxes, -17.8, 179.95))
		assert.False(t, inside(boxes, -17.8, 0))
	})

	t.Run("west edge", func(t *testing.T) {
		boxes := utils.BoundingBox(65.0, -179.8, 50)
		require.Len(t, boxes, 2)
		assert.True(t, inside(boxes, 65.0, 179.9))
		assert.True(t, inside(boxes, 65.0, -179.5))
	})

	t.Run("pole covers every longitude", func(t *testing.T) {
		boxes := utils.BoundingBox(90, 0, 10)
		require.Len(t, boxes, 1)
		assert.Equal(t, -180.0, boxes[0].MinLon)
		assert.Equal(t, 180.0, boxes[0].MaxLon)
	})
}
