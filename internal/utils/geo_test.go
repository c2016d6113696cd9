package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

func TestDistanceMeters_IdenticalPoints(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(-26.2041, 28.0473, -26.2041, 28.0473))
	assert.Equal(t, 0.0, DistanceMeters(0, 0, 0, 0))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	d1 := DistanceMeters(-26.0, 28.0, -26.001, 28.001)
	d2 := DistanceMeters(-26.001, 28.001, -26.0, 28.0)
	assert.Equal(t, d1, d2)
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Two points roughly 136m apart in Johannesburg
	d := DistanceMeters(-26.0, 28.0, -26.001, 28.001)
	assert.InDelta(t, 136.0, d, 15.0)
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceMeters(math.NaN(), 28.0, -26.0, 28.0)))
}

func TestDistanceKm(t *testing.T) {
	a := models.Location{Latitude: -26.2041, Longitude: 28.0473}  // Johannesburg
	b := models.Location{Latitude: -25.7479, Longitude: 28.2293}  // Pretoria
	d := DistanceKm(a, b)
	assert.InDelta(t, 53.9, d, 2.0)
}

func TestEncodeLocation(t *testing.T) {
	loc := models.Location{Latitude: -26.2041, Longitude: 28.0473}
	hash := EncodeLocation(loc, 7)
	assert.Len(t, hash, 7)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(-26.0, 28.0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.False(t, ValidCoordinates(91, 0))
	assert.False(t, ValidCoordinates(0, -181))
	assert.False(t, ValidCoordinates(math.NaN(), 0))
	assert.False(t, ValidCoordinates(0, math.Inf(1)))
}
