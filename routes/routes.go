// File: /routes/routes.go
package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"friendlink-api/config"
	"friendlink-api/controllers"
	"friendlink-api/middleware"
	"friendlink-api/repositories"
	"friendlink-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	friendRepo := repositories.NewFriendRepository(db)

	// Services
	friendService := services.NewFriendService(userRepo, friendRepo, emailService)
	recommendationService := services.NewRecommendationService(userRepo, friendRepo)

	// Controllers
	authController := controllers.NewAuthController(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	friendController := controllers.NewFriendController(friendService, recommendationService)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Auth routes (public)
	user := r.Group("/user")
	{
		user.POST("/signup", authController.Signup)
		user.POST("/login", authController.Login)
	}

	// Protected routes
	friend := r.Group("/friend")
	friend.Use(middleware.AuthMiddleware(cfg.JWTSecret, userRepo))
	{
		friend.POST("/request", friendController.SendFriendRequest)
		friend.PUT("/request/:requestId/accept", friendController.AcceptFriendRequest)
		friend.PUT("/request/:requestId/reject", friendController.RejectFriendRequest)
		friend.DELETE("/request/:requestId", friendController.CancelFriendRequest)
		friend.GET("/requests", friendController.GetFriendRequests)
		friend.GET("/list", friendController.GetFriendsList)
		friend.GET("/recommendations", friendController.GetRecommendations)
		friend.POST("/search", friendController.SearchUsers)
	}
}

// SetupCORS allows the SPA frontend to call the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
