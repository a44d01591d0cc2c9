package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahassan/unisync/internal/app/controllers"
	"github.com/ahassan/unisync/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	assignmentController *controllers.AssignmentController,
	goalController *controllers.GoalController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		courses := authenticated.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("/reload", courseController.ReloadCourses)
			courses.POST("", courseController.CreateCourse)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		assignments := authenticated.Group("/assignments")
		{
			assignments.GET("", assignmentController.ListAssignments)
			assignments.POST("/reload", assignmentController.ReloadAssignments)
			assignments.POST("", assignmentController.CreateAssignment)
			assignments.PUT("/:id", assignmentController.UpdateAssignment)
			assignments.POST("/:id/toggle", assignmentController.ToggleComplete)
			assignments.DELETE("/:id", assignmentController.DeleteAssignment)
		}

		goals := authenticated.Group("/study-goals")
		{
			goals.GET("", goalController.ListGoals)
			goals.POST("/reload", goalController.ReloadGoals)
			goals.POST("", goalController.CreateGoal)
			goals.POST("/:id/log-hours", goalController.LogHours)
			goals.DELETE("/:id", goalController.DeleteGoal)
		}

		settings := authenticated.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.POST("/reload", settingsController.ReloadSettings)
			settings.PUT("", settingsController.UpdateSettings)
		}

		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("", dashboardController.GetDashboard)
			dashboard.POST("/reload", dashboardController.ReloadDashboard)
		}
	}
}
