package services

import (
	"errors"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/utils"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
	Weight   float64
	Height   float64
	Age      int
	Gender   string
	BodyType string
	Goal     string
}

func RegisterUser(input RegisterInput) (*models.User, error) {
	var count int64
	config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", input.Username, input.Email).
		Count(&count)
	if count > 0 {
		return nil, errors.New("username or email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:         input.Username,
		Email:            input.Email,
		Password:         hashedPassword,
		Name:             input.Name,
		Weight:           input.Weight,
		Height:           input.Height,
		Age:              input.Age,
		Gender:           input.Gender,
		BodyType:         input.BodyType,
		Goal:             input.Goal,
		DailyCalorieGoal: 2000,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (*models.User, string, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return nil, "", errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
