package routes

import (
	"github.com/gin-gonic/gin"

	"staff-promotion-api/controllers"
	"staff-promotion-api/middleware"
	"staff-promotion-api/models"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Staff Promotion API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// User directory
			users := protected.Group("/users")
			{
				users.POST("", middleware.RequireRole(models.RoleAdmin), controllers.RegisterUser)
				users.GET("", middleware.RequireRole(models.RoleAdmin, models.RoleHR), controllers.GetUsers)
				users.GET("/:id", controllers.GetUser)
			}

			// Organizational reference data
			schools := protected.Group("/schools")
			{
				schools.GET("", controllers.GetSchools)
				schools.GET("/:id", controllers.GetSchool)
				schools.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateSchool)
				schools.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateSchool)
				schools.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteSchool)
			}

			departments := protected.Group("/departments")
			{
				departments.GET("", controllers.GetDepartments)
				departments.GET("/:id", controllers.GetDepartment)
				departments.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateDepartment)
				departments.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDepartment)
				departments.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDepartment)
			}

			// Promotion requests
			requests := protected.Group("/promotion-requests")
			{
				requests.POST("/applicant/:applicantId", controllers.CreatePromotionRequest)
				requests.PUT("/:id/submit", controllers.SubmitPromotionRequest)
				requests.GET("/:id", controllers.GetPromotionRequest)
				requests.PUT("/:id", controllers.UpdatePromotionRequest)
				requests.DELETE("/:id", controllers.DeletePromotionRequest)

				requests.GET("/applicant/:applicantId", controllers.GetPromotionRequestsByApplicant)
				requests.GET("/status/:status", controllers.GetPromotionRequestsByStatus)
				requests.GET("/department/:deptId", controllers.GetPromotionRequestsByDepartment)
				requests.GET("/school/:schoolId", controllers.GetPromotionRequestsBySchool)

				// Documents attached to a request
				requests.POST("/:id/documents", controllers.UploadDocument)
				requests.GET("/:id/documents", controllers.GetDocumentsByRequest)
			}

			// Promotion reviews
			reviews := protected.Group("/promotion-reviews")
			{
				// Only approval-chain reviewers submit decisions
				reviews.POST("", middleware.RequireRole(models.RoleHOD, models.RoleDean, models.RoleDVC), controllers.SubmitReview)
				reviews.GET("/:id", controllers.GetReview)
				reviews.GET("/by-reviewer/:reviewerId", controllers.GetReviewsByReviewer)
				reviews.GET("/by-request/:requestId", controllers.GetReviewsByRequest)
				reviews.GET("/by-decision/:decision", controllers.GetReviewsByDecision)
				reviews.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteReview)
			}

			// Documents
			documents := protected.Group("/documents")
			{
				documents.GET("", controllers.ListDocuments)
				documents.GET("/download/:documentId", controllers.DownloadDocument)
				documents.DELETE("/:documentId", controllers.DeleteDocument)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
				notifications.DELETE("/:id", controllers.DeleteNotification)
			}
		}
	}
}
