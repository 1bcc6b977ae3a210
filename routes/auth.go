package routes

import (
	"github.com/SurajDXC/crime-report/handlers/auth"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	h := auth.New(db)

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
}
