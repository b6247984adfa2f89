package pricing

// DefaultBasePrice is used when the state has no table entry.
const DefaultBasePrice = 3000

// basePrices maps a state to its base price per sqft.
var basePrices = map[string]float64{
	"Andhra Pradesh": 3800,
	"Maharashtra":    5500,
	"Karnataka":      4800,
	"Tamil Nadu":     4200,
	"Telangana":      4500,
	"Gujarat":        3800,
	"Rajasthan":      2800,
	"Uttar Pradesh":  3200,
	"West Bengal":    3500,
	"Kerala":         4000,
	"Madhya Pradesh": 2500,
}

// soilFactors maps a soil type to its multiplier. Unknown soils are
// neutral.
var soilFactors = map[string]float64{
	"Alluvial": 1.25,
	"Black":    1.20,
	"Red":      1.0,
	"Laterite": 0.9,
	"Desert":   0.7,
	"Mountain": 0.75,
}

// City is a recognized city's reference coordinate and desirability
// premium.
type City struct {
	Lat     float64
	Lng     float64
	Premium float64
}

var cities = map[string]City{
	"Visakhapatnam": {17.6868, 83.2185, 1.3},
	"Vijayawada":    {16.5062, 80.6480, 1.25},
	"Guntur":        {16.3067, 80.4365, 1.15},
	"Tirupati":      {13.6288, 79.4192, 1.2},
	"Kakinada":      {16.9891, 82.2475, 1.1},
	"Nellore":       {14.4426, 79.9865, 1.1},
	"Mumbai":        {19.0760, 72.8777, 1.8},
	"Pune":          {18.5204, 73.8567, 1.5},
	"Bangalore":     {12.9716, 77.5946, 1.6},
	"Hyderabad":     {17.3850, 78.4867, 1.5},
	"Chennai":       {13.0827, 80.2707, 1.5},
}

// Comparison is the static year-over-year base-price table served to
// admins.
type Comparison struct {
	Years  []int            `json:"years"`
	States map[string][]int `json:"states"`
}

// HistoricalComparison returns the fixed multi-year price table.
func HistoricalComparison() Comparison {
	return Comparison{
		Years: []int{2021, 2022, 2023, 2024},
		States: map[string][]int{
			"Andhra Pradesh": {3200, 3400, 3600, 3800},
			"Maharashtra":    {4800, 5000, 5200, 5500},
			"Karnataka":      {4200, 4400, 4600, 4800},
			"Tamil Nadu":     {3800, 3950, 4100, 4200},
			"Telangana":      {4000, 4200, 4350, 4500},
		},
	}
}
