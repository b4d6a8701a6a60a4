package services

import (
	"errors"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/utils"
)

type ProfileInput struct {
	Name             string  `json:"name"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	BodyType         string  `json:"body_type"`
	Goal             string  `json:"goal"`
	DailyCalorieGoal int     `json:"daily_calorie_goal"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	profile := map[string]interface{}{
		"id":                 user.ID,
		"username":           user.Username,
		"email":              user.Email,
		"name":               user.Name,
		"weight":             user.Weight,
		"height":             user.Height,
		"age":                user.Age,
		"gender":             user.Gender,
		"body_type":          user.BodyType,
		"goal":               user.Goal,
		"daily_calorie_goal": user.DailyCalorieGoal,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.BodyType != "" {
		user.BodyType = input.BodyType
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}
	if input.DailyCalorieGoal > 0 {
		user.DailyCalorieGoal = input.DailyCalorieGoal
	}

	return config.DB.Save(&user).Error
}
