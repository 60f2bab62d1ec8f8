package api

import (
	"net/http"

	"gymapp/backend/internal/domain"
	"gymapp/backend/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	planService service.PlanService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	planHandler := NewPlanHandler(planService)
	progressHandler := NewProgressHandler(progressService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile Routes ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.SaveProfile)

		// --- Workout Plan Routes ---
		planGroup := protected.Group("/plans")
		{
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.GET("/latest", planHandler.GetLatestPlan)
		}

		// --- Raw Workout Record Routes ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", planHandler.ListWorkouts)
			workoutGroup.DELETE("/:workoutId", planHandler.DeleteWorkout)
		}

		// --- Admin Routes ---
		adminGroup := protected.Group("/admin")
		adminGroup.Use(RoleMiddleware(domain.RoleAdmin))
		{
			adminGroup.GET("/users", authHandler.ListUsers)
		}

		// --- Progress Routes ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.POST("/weight", progressHandler.RecordWeight)
			progressGroup.GET("/weight", progressHandler.GetWeightHistory)
			progressGroup.POST("/photos/upload-url", progressHandler.RequestPhotoUpload)
			progressGroup.POST("/photos/confirm", progressHandler.ConfirmPhotoUpload)
			progressGroup.GET("/photos", progressHandler.GetPhotos)
			progressGroup.DELETE("/photos/:photoId", progressHandler.DeletePhoto)
		}
	}
}
