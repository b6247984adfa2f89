package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineReflexive(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{19.0760, 72.8777},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		assert.Zero(t, Haversine(p[0], p[1], p[0], p[1]))
	}
}

func TestHaversineSymmetric(t *testing.T) {
	d1 := Haversine(19.0760, 72.8777, 18.5204, 73.8567)
	d2 := Haversine(18.5204, 73.8567, 19.0760, 72.8777)
	assert.Equal(t, d1, d2)
}

func TestHaversineKnownDistances(t *testing.T) {
	// Mumbai to Pune, roughly 120 km as the crow flies.
	d := Haversine(19.0760, 72.8777, 18.5204, 73.8567)
	assert.InDelta(t, 120.15, d, 0.5)

	// Mumbai to the (0,0) null island default is several thousand km out.
	far := Haversine(19.0760, 72.8777, 0, 0)
	assert.Greater(t, far, 8000.0)
}
