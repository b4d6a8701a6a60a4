package controllers

import (
	"net/http"

	"github.com/jb24000/fittrackerpro/config"
	"github.com/jb24000/fittrackerpro/models"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

func GetRecommendations(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, services.Recommend(user.BodyType, user.Goal))
}
