package server

import (
	"github.com/labstack/echo/v4"

	"example.com/selfcare/backend/internal/config"
	"example.com/selfcare/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	storage config.StorageConfig,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	metricsHandler *handlers.MetricsHandler,
	mealHandler *handlers.MealHandler,
	workoutHandler *handlers.WorkoutHandler,
	scheduleHandler *handlers.ScheduleHandler,
	tipHandler *handlers.TipHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)
	e.Static("/static/avatars", storage.AvatarDir)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)
	authGroup.POST("/reset-password", authHandler.RequestPasswordReset)
	authGroup.POST("/reset-password/confirm", authHandler.ConfirmPasswordReset)

	profile := api.Group("/profile", authMiddleware)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.POST("/avatar", profileHandler.UploadAvatar)
	profile.POST("/setup", profileHandler.Setup)

	metrics := api.Group("/health", authMiddleware)
	metrics.POST("/bmi", metricsHandler.BMI)
	metrics.POST("/bmr", metricsHandler.BMR)
	metrics.POST("/tdee", metricsHandler.TDEE)

	meals := api.Group("/meals", authMiddleware)
	meals.GET("/catalog", mealHandler.Catalog)
	meals.POST("/schedule", mealHandler.GenerateSchedule)

	workouts := api.Group("/workouts", authMiddleware)
	workouts.GET("/library", workoutHandler.Library)
	workouts.POST("/plan", workoutHandler.GeneratePlan)
	workouts.GET("/videos", workoutHandler.VideoParts)
	workouts.GET("/videos/:part", workoutHandler.Videos)

	schedules := api.Group("/schedules", authMiddleware)
	schedules.GET("/meals", scheduleHandler.ListMeals)
	schedules.POST("/meals", scheduleHandler.SaveMeals)
	schedules.DELETE("/meals/:index", scheduleHandler.DeleteMeal)
	schedules.GET("/workouts", scheduleHandler.ListWorkouts)
	schedules.POST("/workouts", scheduleHandler.SaveWorkouts)
	schedules.DELETE("/workouts/:index", scheduleHandler.DeleteWorkout)
	schedules.GET("/today", scheduleHandler.Today)

	tips := api.Group("/tips", authMiddleware)
	tips.GET("", tipHandler.List)
	tips.GET("/:id", tipHandler.ByID)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
