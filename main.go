package main

import (
	"github.com/SurajDXC/crime-report/config"
	"github.com/SurajDXC/crime-report/db"
	_ "github.com/SurajDXC/crime-report/docs"
	"github.com/SurajDXC/crime-report/routes"
	"github.com/SurajDXC/crime-report/utils"

	"github.com/gin-gonic/gin"
)

// @title Crime Reporting API
// @version 1.0
// @description Community crime-reporting service: report incidents, comment, rate credibility.
// @host localhost:8080
// @BasePath /api
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		utils.LogError(err, "Error loading configuration")
		panic(err)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	if err := db.Seed(database, cfg); err != nil {
		utils.LogError(err, "Error seeding database")
		panic(err)
	}

	r := routes.SetupRouter(database)

	utils.LogInfo("Server listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Error starting server")
		panic(err)
	}
}
