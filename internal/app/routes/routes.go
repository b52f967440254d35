package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ogulcan/coursepilot/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	catalogController *controllers.CatalogController,
	sessionController *controllers.SessionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", catalogController.Health)

	schedules := v1.Group("/schedules")
	{
		schedules.POST("", scheduleController.AssembleSchedule)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.ListCourses)
		courses.POST("/eligible", catalogController.EligibleCourses)
		courses.GET("/:id", catalogController.GetCourse)
	}

	v1.GET("/core-tags", catalogController.ListCoreTags)

	catalog := v1.Group("/catalog")
	{
		catalog.POST("/refresh", catalogController.RefreshCatalog)
	}

	sessions := v1.Group("/sessions")
	{
		sessions.POST("", sessionController.StartSession)
		sessions.GET("/:id/history", sessionController.GetHistory)
		sessions.PUT("/:id/history", sessionController.ReplaceHistory)
		sessions.POST("/:id/history", sessionController.AppendHistory)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
