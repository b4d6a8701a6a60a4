package models

import (
	"gorm.io/gorm"
)

// Append-only activity logs. CreatedAt is the log timestamp; rows are never
// updated or deleted.

type FoodLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	FoodName string `gorm:"not null"`
	Calories int    `gorm:"not null"`
	Quantity float64
	Unit     string
	MealType string
}

type ExerciseLog struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	ExerciseName   string `gorm:"not null"`
	Duration       int    // minutes
	Intensity      string
	CaloriesBurned int
}

type WeightLog struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	Weight float64
	Unit   string
}
