package utils

import "errors"

// CalculateBMI takes height in centimeters and weight in kilograms.
// Inputs outside plausible human ranges are rejected so profile typos
// don't surface absurd numbers.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	m := heightCm / 100.0
	return weightKg / (m * m), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
