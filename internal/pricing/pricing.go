// Package pricing computes land price estimates from a multiplicative
// factor model over fixed coefficient tables. Estimate is pure; callers
// persist the result separately.
package pricing

import "github.com/rohits-web03/plotwise/internal/geo"

// Coordinates is the optional parcel location. Valid is false when the
// caller received coordinate input it could not parse; absent
// coordinates are a valid (0, 0).
type Coordinates struct {
	Lat   float64
	Lng   float64
	Valid bool
}

// Input is one parcel description. Numeric fields are assumed already
// validated by the caller (Sqft > 0, distances and depth >= 0).
type Input struct {
	State            string
	City             string
	Sqft             float64
	MainRoadDistance float64 // km to the nearest main road
	SoilType         string
	WaterLevel       float64 // water table depth in metres
	Coordinates      Coordinates
}

// Quote is the derived price pair.
type Quote struct {
	PricePerSqft int
	TotalPrice   float64
}

// Estimate prices a parcel: state base price times road, soil, water,
// city premium and location factors, truncated to a whole price per
// sqft.
func Estimate(in Input) Quote {
	base, ok := basePrices[in.State]
	if !ok {
		base = DefaultBasePrice
	}

	premium := 1.0
	location := 1.0
	if city, known := cities[in.City]; known {
		premium = city.Premium
		location = locationFactor(city, in.Coordinates)
	}

	pps := int(base * roadFactor(in.MainRoadDistance) * soilFactor(in.SoilType) *
		waterFactor(in.WaterLevel) * premium * location)
	return Quote{
		PricePerSqft: pps,
		TotalPrice:   float64(pps) * in.Sqft,
	}
}

func roadFactor(km float64) float64 {
	switch {
	case km < 0.5:
		return 1.3
	case km < 1:
		return 1.15
	case km < 2:
		return 1.0
	default:
		return 0.85
	}
}

func soilFactor(soil string) float64 {
	if f, ok := soilFactors[soil]; ok {
		return f
	}
	return 1.0
}

// waterFactor rewards a shallow water table.
func waterFactor(depth float64) float64 {
	switch {
	case depth < 50:
		return 1.3
	case depth < 100:
		return 1.2
	case depth < 200:
		return 1.1
	default:
		return 1.0
	}
}

// locationFactor is best-effort: coordinates that failed to parse leave
// the factor neutral rather than failing the estimate. Coordinates that
// were simply absent default to (0, 0) upstream and are scored like any
// other point.
func locationFactor(city City, c Coordinates) float64 {
	if !c.Valid {
		return 1.0
	}
	dist := geo.Haversine(city.Lat, city.Lng, c.Lat, c.Lng)
	switch {
	case dist < 5:
		return 1.5
	case dist < 10:
		return 1.3
	case dist < 20:
		return 1.1
	default:
		return 0.8
	}
}
