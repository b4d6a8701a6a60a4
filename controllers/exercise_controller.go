package controllers

import (
	"net/http"
	"strconv"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

type ExerciseLogInput struct {
	ExerciseName string `json:"exercise_name" binding:"required"`
	Duration     *int   `json:"duration" binding:"required"` // pointer: 0 minutes is a valid entry
	Intensity    string `json:"intensity" binding:"required"`
}

// LogExercise computes calories burned from the exercise table and stores
// the entry; the client never supplies the calorie figure.
func LogExercise(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ExerciseLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	burned := services.CalculateExerciseCalories(input.ExerciseName, *input.Duration, input.Intensity)

	log := models.ExerciseLog{
		UserID:         userID,
		ExerciseName:   input.ExerciseName,
		Duration:       *input.Duration,
		Intensity:      input.Intensity,
		CaloriesBurned: burned,
	}
	if err := services.NewLogStore(config.DB).AppendExercise(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitFeedEvent(userID, "exercise.logged", gin.H{
		"id":              log.ID,
		"exercise_name":   log.ExerciseName,
		"calories_burned": log.CaloriesBurned,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":         "Exercise logged successfully",
		"id":              log.ID,
		"calories_burned": burned,
	})
}

// GET /exercise/calculate?exercise_name=running&duration=30&intensity=high
func CalculateExerciseCalories(c *gin.Context) {
	name := c.Query("exercise_name")
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be an integer"})
		return
	}

	burned := services.CalculateExerciseCalories(name, duration, c.Query("intensity"))
	c.JSON(http.StatusOK, gin.H{"calories_burned": burned})
}

func GetTodayExercise(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	logs, err := services.NewLogStore(config.DB).ExerciseForDay(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	exercises := make([]gin.H, 0, len(logs))
	totalBurned := 0
	for _, e := range logs {
		exercises = append(exercises, gin.H{
			"id":              e.ID,
			"exercise_name":   e.ExerciseName,
			"duration":        e.Duration,
			"intensity":       e.Intensity,
			"calories_burned": e.CaloriesBurned,
			"logged_at":       e.CreatedAt,
		})
		totalBurned += e.CaloriesBurned
	}

	c.JSON(http.StatusOK, gin.H{"exercises": exercises, "total_calories_burned": totalBurned})
}
