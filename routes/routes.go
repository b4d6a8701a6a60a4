package routes

import (
	"net/http"

	"github.com/jb24000/fittrackerpro/controllers"
	"github.com/jb24000/fittrackerpro/middlewares"
	"github.com/jb24000/fittrackerpro/pkg/logger"
	"github.com/jb24000/fittrackerpro/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(log *logger.Logger, hub *services.RealtimeHub) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestID(), middlewares.RequestLogger(log), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FitTracker Pro API is running!"})
	})

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Food search and calorie calculation need no identity
	r.GET("/food/search", controllers.SearchFood)
	r.GET("/exercise/calculate", controllers.CalculateExerciseCalories)

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/food/log", controllers.LogFood)
		api.GET("/food/today", controllers.GetTodayFood)

		api.POST("/exercise/log", controllers.LogExercise)
		api.GET("/exercise/today", controllers.GetTodayExercise)

		api.POST("/weight/log", controllers.LogWeight)
		api.GET("/weight/history", controllers.GetWeightHistory)

		api.POST("/water/log", controllers.LogWater)
		api.GET("/water/today", controllers.GetTodayWater)
		api.POST("/steps/log", controllers.LogSteps)
		api.GET("/steps/today", controllers.GetTodaySteps)

		api.GET("/dashboard/summary", controllers.GetDashboardSummary)
		api.GET("/recommendations", controllers.GetRecommendations)

		rc := controllers.NewRealtimeController(hub)
		api.GET("/ws/feed", rc.FeedWS)
	}

	return r
}
