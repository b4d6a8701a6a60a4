package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type FoodEstimate struct {
	Name            string  `json:"name"`
	CaloriesPer100g int     `json:"calories_per_100g"`
	Protein         float64 `json:"protein"`
	Carbs           float64 `json:"carbs"`
	Fat             float64 `json:"fat"`
}

// Synthetic estimate returned when nothing in the food table matches.
const (
	estimateCalories = 100
	estimateProtein  = 5
	estimateCarbs    = 15
	estimateFat      = 2
)

var titleCaser = cases.Title(language.English)

// CalculateExerciseCalories estimates calories burned for an exercise.
// Unknown exercises fall back to a flat per-minute base; unknown intensities
// fall back to a 1.0 multiplier. Never errors: any input yields a number.
// Negative durations are treated as zero.
func CalculateExerciseCalories(name string, durationMinutes int, intensity string) int {
	if durationMinutes < 0 {
		durationMinutes = 0
	}

	base := defaultCaloriesPerMinute
	multipliers := defaultIntensityMultiplier
	if entry, ok := exerciseTable[strings.ToLower(strings.TrimSpace(name))]; ok {
		base = entry.CaloriesPerMinute
		multipliers = entry.IntensityMultiplier
	}

	mult, ok := multipliers[strings.ToLower(strings.TrimSpace(intensity))]
	if !ok {
		mult = 1.0
	}

	// All factors are non-negative, so truncation is floor.
	return int(float64(base) * float64(durationMinutes) * mult)
}

// SearchFood matches the query as a substring of each table key and returns
// the hits in table order, names title-cased. With no hits it returns a single
// synthetic estimate carrying the query text as entered.
func SearchFood(query string) []FoodEstimate {
	q := strings.ToLower(query)

	var results []FoodEstimate
	for _, f := range foodTable {
		if strings.Contains(f.Name, q) {
			results = append(results, FoodEstimate{
				Name:            titleCaser.String(f.Name),
				CaloriesPer100g: f.CaloriesPer100g,
				Protein:         f.Protein,
				Carbs:           f.Carbs,
				Fat:             f.Fat,
			})
		}
	}

	if len(results) == 0 {
		return []FoodEstimate{{
			Name:            query,
			CaloriesPer100g: estimateCalories,
			Protein:         estimateProtein,
			Carbs:           estimateCarbs,
			Fat:             estimateFat,
		}}
	}
	return results
}
