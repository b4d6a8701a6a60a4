package controllers

import (
	"net/http"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

func GetDashboardSummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	date, ok := referenceDate(c)
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	svc := services.NewSummaryService(
		services.NewLogStore(config.DB),
		services.NewCounterStore(config.DB),
	)
	summary, err := svc.Summarize(&user, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
