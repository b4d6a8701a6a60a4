package services

// Static reference data, built once at init and read-only afterwards.
// Safe for unsynchronized concurrent reads.

type foodEntry struct {
	Name            string
	CaloriesPer100g int
	Protein         float64
	Carbs           float64
	Fat             float64
}

// foodTable is an ordered slice rather than a map: search results are
// returned in declaration order.
var foodTable = []foodEntry{
	{"apple", 52, 0.3, 14, 0.2},
	{"banana", 89, 1.1, 23, 0.3},
	{"chicken breast", 165, 31, 0, 3.6},
	{"rice", 130, 2.7, 28, 0.3},
	{"oatmeal", 68, 2.4, 12, 1.4},
	{"salmon", 208, 25, 0, 12},
	{"broccoli", 34, 2.8, 7, 0.4},
	{"egg", 155, 13, 1.1, 11},
	{"yogurt", 59, 10, 3.6, 0.4},
	{"bread", 265, 9, 49, 3.2},
}

type exerciseEntry struct {
	CaloriesPerMinute   int
	IntensityMultiplier map[string]float64
}

var exerciseTable = map[string]exerciseEntry{
	"running":       {10, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.3}},
	"walking":       {4, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.2}},
	"cycling":       {8, map[string]float64{"low": 0.7, "moderate": 1.0, "high": 1.4}},
	"swimming":      {11, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.3}},
	"weightlifting": {6, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.2}},
	"yoga":          {3, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.1}},
	"pilates":       {4, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.2}},
	"dancing":       {5, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.3}},
	"basketball":    {8, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.4}},
	"tennis":        {7, map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.3}},
}

// Fallbacks for exercises not in the table.
const defaultCaloriesPerMinute = 5

var defaultIntensityMultiplier = map[string]float64{"low": 0.8, "moderate": 1.0, "high": 1.3}
