package routes

import (
	"fuel-distribution-api/controllers"
	"fuel-distribution-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/submit-quote", controllers.SubmitQuote)
			public.POST("/submit-credit-application", controllers.SubmitCreditApplication)

			// Health check
			public.GET("/health", controllers.Health)
		}

		// Admin routes (static operator secret)
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/credit-applications", controllers.ListCreditApplications)
			admin.PATCH("/credit-applications", controllers.UpdateCreditApplication)
		}
	}
}
