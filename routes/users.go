package routes

import (
	"github.com/SurajDXC/crime-report/handlers/users"
	"github.com/SurajDXC/crime-report/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UsersRoutes(api *gin.RouterGroup, db *gorm.DB) {
	h := users.New(db)

	api.GET("/me", middleware.JWTAuth(db), h.Me)
}
