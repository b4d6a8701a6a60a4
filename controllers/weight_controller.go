package controllers

import (
	"net/http"
	"strconv"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

type WeightLogInput struct {
	Weight float64 `json:"weight" binding:"required"`
	Unit   string  `json:"unit" binding:"required"`
}

func LogWeight(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input WeightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := models.WeightLog{
		UserID: userID,
		Weight: input.Weight,
		Unit:   input.Unit,
	}
	if err := services.NewLogStore(config.DB).AppendWeight(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitFeedEvent(userID, "weight.logged", gin.H{
		"id":     log.ID,
		"weight": log.Weight,
		"unit":   log.Unit,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Weight logged successfully", "id": log.ID})
}

// GET /weight/history?days=30
func GetWeightHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	limit := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		limit = n
	}

	logs, err := services.NewLogStore(config.DB).WeightHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history := make([]gin.H, 0, len(logs))
	for _, w := range logs {
		history = append(history, gin.H{
			"weight":    w.Weight,
			"unit":      w.Unit,
			"logged_at": w.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"weight_history": history})
}
