// controllers/tracker_controller.go
package controllers

import (
	"net/http"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

// Water and steps are replace-on-write daily counters: logging 1200 steps
// twice leaves 1200, not 2400.

// Pointer fields: required enforces presence while still letting a client
// write the zero value (0 glasses, 0 steps).
type WaterLogInput struct {
	Glasses *int64 `json:"glasses" binding:"required"`
}

type StepsLogInput struct {
	Steps *int64 `json:"steps" binding:"required"`
}

func LogWater(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	var input WaterLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewCounterStore(config.DB).Upsert(userID, date, models.CounterWater, *input.Glasses); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitFeedEvent(userID, "water.updated", gin.H{"glasses": *input.Glasses})

	c.JSON(http.StatusOK, gin.H{"message": "Water intake logged successfully"})
}

func GetTodayWater(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	glasses, _, err := services.NewCounterStore(config.DB).Get(userID, date, models.CounterWater)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"glasses": glasses, "goal": services.WaterGoal})
}

func LogSteps(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	var input StepsLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.NewCounterStore(config.DB).Upsert(userID, date, models.CounterSteps, *input.Steps); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitFeedEvent(userID, "steps.updated", gin.H{"steps": *input.Steps})

	c.JSON(http.StatusOK, gin.H{"message": "Steps logged successfully"})
}

func GetTodaySteps(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	steps, _, err := services.NewCounterStore(config.DB).Get(userID, date, models.CounterSteps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"steps": steps, "goal": services.StepsGoal})
}
