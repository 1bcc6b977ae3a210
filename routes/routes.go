package routes

import (
	"time"

	"github.com/SurajDXC/crime-report/handlers/ping"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pingHandler := ping.New()
	r.GET("/", pingHandler.HandlePing)
	r.GET("/ping", pingHandler.HandlePing)

	// All API endpoints share the /api prefix
	api := r.Group("/api")

	AuthRoutes(api, db)
	UsersRoutes(api, db)
	CrimeTypesRoutes(api, db)
	CrimeReportsRoutes(api, db)

	return r
}
