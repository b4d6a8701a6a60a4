package models

import (
    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Username         string `gorm:"uniqueIndex;not null"`
    Email            string `gorm:"uniqueIndex;not null"`
    Password         string `gorm:"not null"`
    Name             string `gorm:"not null"`
    Weight           float64
    Height           float64
    Age              int
    Gender           string
    BodyType         string // free-form, matched case-insensitively by the recommendation engine
    Goal             string
    DailyCalorieGoal int `gorm:"default:2000"`
}
