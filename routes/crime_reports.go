package routes

import (
	"github.com/SurajDXC/crime-report/handlers/reports"
	"github.com/SurajDXC/crime-report/handlers/reports/comments"
	"github.com/SurajDXC/crime-report/handlers/reports/ratings"
	"github.com/SurajDXC/crime-report/middleware"
	"github.com/SurajDXC/crime-report/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CrimeReportsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	stats := services.NewStatsService(db)
	reportHandler := reports.New(db)
	commentHandler := comments.New(db, stats)
	ratingHandler := ratings.New(db, stats)

	// Public feed
	api.GET("/crime-reports", reportHandler.List)
	api.GET("/crime-reports/:id", reportHandler.GetByID)
	api.GET("/crime-reports/:id/comments", commentHandler.List)

	// Authenticated interactions
	protected := api.Group("/crime-reports")
	protected.Use(middleware.JWTAuth(db))
	{
		protected.POST("", reportHandler.Create)
		protected.POST("/:id/comments", commentHandler.Create)
		protected.POST("/:id/rating", ratingHandler.Rate)
		protected.GET("/:id/rating", ratingHandler.GetOwn)
	}

	// Moderation
	adminRoutes := api.Group("/admin/crime-reports")
	adminRoutes.Use(middleware.JWTAuth(db))
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.GET("", reportHandler.AdminList)
		adminRoutes.PUT("/:id/block", reportHandler.Block)
	}
}
