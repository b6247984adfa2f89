package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// validCoords marks coordinates as parseable, the common case.
func validCoords(lat, lng float64) Coordinates {
	return Coordinates{Lat: lat, Lng: lng, Valid: true}
}

func TestEstimateBasePricePassthrough(t *testing.T) {
	// Road distance 0.1 km is the only non-neutral factor (1.3): soil
	// "Red" and water depth 300 are neutral, and an unknown city skips
	// both premium and location.
	expected := map[string]int{
		"Andhra Pradesh": 4940,
		"Maharashtra":    7150,
		"Karnataka":      6240,
		"Tamil Nadu":     5460,
		"Telangana":      5850,
		"Gujarat":        4940,
		"Rajasthan":      3640,
		"Uttar Pradesh":  4160,
		"West Bengal":    4550,
		"Kerala":         5200,
		"Madhya Pradesh": 3250,
	}
	for state, want := range expected {
		q := Estimate(Input{
			State:            state,
			City:             "Atlantis",
			Sqft:             250,
			MainRoadDistance: 0.1,
			SoilType:         "Red",
			WaterLevel:       300,
			Coordinates:      validCoords(12, 77),
		})
		assert.Equal(t, want, q.PricePerSqft, state)
		assert.Equal(t, float64(want)*250, q.TotalPrice, state)
	}
}

func TestEstimateUnknownStateDefaults(t *testing.T) {
	q := Estimate(Input{
		State:            "Narnia",
		City:             "Atlantis",
		Sqft:             100,
		MainRoadDistance: 2.5, // -> 0.85
		SoilType:         "Red",
		WaterLevel:       300,
		Coordinates:      validCoords(0, 0),
	})
	assert.Equal(t, 2550, q.PricePerSqft) // 3000 * 0.85
}

func TestEstimateSoilAndWaterFactors(t *testing.T) {
	q := Estimate(Input{
		State:            "Kerala",
		City:             "Atlantis",
		Sqft:             1,
		MainRoadDistance: 1.5, // -> 1.0
		SoilType:         "Desert",
		WaterLevel:       40, // -> 1.3
		Coordinates:      validCoords(0, 0),
	})
	// 4000 * 1.0 * 0.7 * 1.3
	assert.Equal(t, 3640, q.PricePerSqft)
}

func TestEstimateWorkedMumbaiExample(t *testing.T) {
	// Parcel at Mumbai's own reference point: every factor engaged.
	// 5500 * 1.3 * 1.2 * 1.3 * 1.8 * 1.5 = 30115.8
	q := Estimate(Input{
		State:            "Maharashtra",
		City:             "Mumbai",
		Sqft:             1000,
		MainRoadDistance: 0.3,
		SoilType:         "Black",
		WaterLevel:       40,
		Coordinates:      validCoords(19.0760, 72.8777),
	})
	assert.Equal(t, 30115, q.PricePerSqft)
	assert.Equal(t, 30115000.0, q.TotalPrice)
}

func TestEstimateUnknownCityIgnoresCoordinates(t *testing.T) {
	base := Estimate(Input{
		State: "Karnataka", City: "Atlantis", Sqft: 1,
		MainRoadDistance: 1.5, SoilType: "Red", WaterLevel: 300,
		Coordinates: validCoords(12.9716, 77.5946),
	})
	moved := Estimate(Input{
		State: "Karnataka", City: "Atlantis", Sqft: 1,
		MainRoadDistance: 1.5, SoilType: "Red", WaterLevel: 300,
		Coordinates: validCoords(-45, 140),
	})
	assert.Equal(t, base.PricePerSqft, moved.PricePerSqft)
	assert.Equal(t, 4800, base.PricePerSqft)
}

func TestEstimateLocationFactorBuckets(t *testing.T) {
	mk := func(c Coordinates) int {
		return Estimate(Input{
			State: "Karnataka", City: "Bangalore", Sqft: 1,
			MainRoadDistance: 1.5, SoilType: "Red", WaterLevel: 300,
			Coordinates: c,
		}).PricePerSqft
	}

	// At the reference point: premium 1.6, location 1.5.
	assert.Equal(t, 11520, mk(validCoords(12.9716, 77.5946)))

	// Default (0,0) coordinates are valid but far away: location 0.8.
	assert.Equal(t, 6144, mk(validCoords(0, 0))) // 4800 * 1.6 * 0.8

	// Unparseable coordinates leave location neutral.
	assert.Equal(t, 7680, mk(Coordinates{Valid: false}))
}

func TestRoadFactorBuckets(t *testing.T) {
	cases := []struct {
		km   float64
		want float64
	}{
		{0, 1.3}, {0.49, 1.3}, {0.5, 1.15}, {0.99, 1.15},
		{1, 1.0}, {1.99, 1.0}, {2, 0.85}, {10, 0.85},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, roadFactor(c.km), "km=%v", c.km)
	}
}

func TestWaterFactorBuckets(t *testing.T) {
	cases := []struct {
		depth float64
		want  float64
	}{
		{0, 1.3}, {49, 1.3}, {50, 1.2}, {99, 1.2},
		{100, 1.1}, {199, 1.1}, {200, 1.0}, {500, 1.0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, waterFactor(c.depth), "depth=%v", c.depth)
	}
}
