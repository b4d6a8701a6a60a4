package controllers

import (
	"net/http"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

type FoodLogInput struct {
	FoodName string  `json:"food_name" binding:"required"`
	Calories *int    `json:"calories" binding:"required"` // pointer: 0 kcal is a valid entry
	Quantity float64 `json:"quantity" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
}

func LogFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := models.FoodLog{
		UserID:   userID,
		FoodName: input.FoodName,
		Calories: *input.Calories,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		MealType: input.MealType,
	}
	if err := services.NewLogStore(config.DB).AppendFood(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitFeedEvent(userID, "food.logged", gin.H{
		"id":        log.ID,
		"food_name": log.FoodName,
		"calories":  log.Calories,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Food logged successfully", "id": log.ID})
}

// GET /food/search?q=apple
func SearchFood(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' query param"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": services.SearchFood(query)})
}

func GetTodayFood(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	logs, err := services.NewLogStore(config.DB).FoodForDay(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	foods := make([]gin.H, 0, len(logs))
	totalCalories := 0
	for _, f := range logs {
		foods = append(foods, gin.H{
			"id":        f.ID,
			"food_name": f.FoodName,
			"calories":  f.Calories,
			"quantity":  f.Quantity,
			"unit":      f.Unit,
			"meal_type": f.MealType,
			"logged_at": f.CreatedAt,
		})
		totalCalories += f.Calories
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods, "total_calories": totalCalories})
}
