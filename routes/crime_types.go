package routes

import (
	"github.com/SurajDXC/crime-report/handlers/crimetypes"
	"github.com/SurajDXC/crime-report/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CrimeTypesRoutes(api *gin.RouterGroup, db *gorm.DB) {
	h := crimetypes.New(db)

	// Listing the vocabulary is public
	api.GET("/crime-types", h.List)

	// Taxonomy management is admin only
	adminRoutes := api.Group("/admin/crime-types")
	adminRoutes.Use(middleware.JWTAuth(db))
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.POST("", h.Create)
		adminRoutes.PUT("/:id", h.Update)
		adminRoutes.DELETE("/:id", h.Delete)
	}
}
