package services

import (
	"strings"
)

// Body type and goal arrive as free-form user profile strings. They are
// folded to closed enumerations once here; anything unrecognized (including
// empty) lands on the default variant, so recommendation lookup is total.

type BodyType string

const (
	BodyEctomorph BodyType = "ectomorph"
	BodyMesomorph BodyType = "mesomorph"
	BodyEndomorph BodyType = "endomorph"
)

type FitnessGoal string

const (
	GoalLoseWeight FitnessGoal = "lose weight"
	GoalGainMuscle FitnessGoal = "gain muscle"
	GoalMaintain   FitnessGoal = "maintain"
)

func ParseBodyType(s string) BodyType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ectomorph":
		return BodyEctomorph
	case "endomorph":
		return BodyEndomorph
	default:
		return BodyMesomorph
	}
}

func ParseFitnessGoal(s string) FitnessGoal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lose weight":
		return GoalLoseWeight
	case "gain muscle":
		return GoalGainMuscle
	default:
		return GoalMaintain
	}
}

type PlannedMeal struct {
	Time        string `json:"time"`
	Meal        string `json:"meal"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
}

type PlannedExercise struct {
	Time        string `json:"time"`
	Exercise    string `json:"exercise"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
}

type Recommendations struct {
	Meals     []PlannedMeal     `json:"meals"`
	Exercises []PlannedExercise `json:"exercises"`
	Tips      []string          `json:"tips"`
}

var mealPlans = map[BodyType][]PlannedMeal{
	BodyEctomorph: {
		{"7:00 AM - 8:00 AM", "High-Calorie Breakfast", "Oatmeal with nuts, banana, and protein powder", 450},
		{"12:00 PM - 1:00 PM", "Protein-Rich Lunch", "Chicken and rice bowl with vegetables", 550},
		{"6:00 PM - 7:00 PM", "Hearty Dinner", "Salmon with quinoa and avocado", 500},
	},
	BodyEndomorph: {
		{"7:00 AM - 8:00 AM", "Low-Carb Breakfast", "Egg omelet with vegetables and cheese", 300},
		{"12:00 PM - 1:00 PM", "Lean Protein Lunch", "Grilled chicken salad with olive oil", 350},
		{"6:00 PM - 7:00 PM", "Light Dinner", "Baked fish with steamed broccoli", 300},
	},
	BodyMesomorph: {
		{"7:00 AM - 8:00 AM", "Balanced Breakfast", "Greek yogurt with berries and nuts", 350},
		{"12:00 PM - 1:00 PM", "Balanced Lunch", "Grilled chicken salad with quinoa", 450},
		{"6:00 PM - 7:00 PM", "Balanced Dinner", "Baked salmon with roasted vegetables", 400},
	},
}

var exercisePlans = map[FitnessGoal][]PlannedExercise{
	GoalLoseWeight: {
		{"6:30 AM - 7:30 AM", "Morning Cardio", "30-minute moderate run", 300},
		{"5:00 PM - 6:00 PM", "Strength Training", "Full body weight training", 250},
	},
	GoalGainMuscle: {
		{"7:00 AM - 8:00 AM", "Weight Training", "Heavy compound movements", 200},
		{"5:00 PM - 6:00 PM", "Strength Training", "Targeted muscle groups", 250},
	},
	GoalMaintain: {
		{"6:30 AM - 7:30 AM", "Mixed Cardio", "Alternating running and walking", 250},
		{"5:00 PM - 6:00 PM", "Strength Training", "Moderate weight training", 200},
	},
}

var generalTips = []string{
	"💧 Drink a glass of water before each meal to help with portion control",
	"😴 Aim for 7-8 hours of sleep for optimal recovery and weight management",
	"🍽️ Try to finish eating 3 hours before bedtime for better digestion",
	"🚶 Take the stairs instead of elevators when possible",
	"🥗 Fill half your plate with vegetables at each meal",
}

// Recommend selects the meal plan for the body type and the exercise plan
// for the goal. Tips are the same for everyone.
func Recommend(bodyType, goal string) Recommendations {
	return Recommendations{
		Meals:     mealPlans[ParseBodyType(bodyType)],
		Exercises: exercisePlans[ParseFitnessGoal(goal)],
		Tips:      generalTips,
	}
}
