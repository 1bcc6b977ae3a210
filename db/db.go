package db

import (
	"github.com/SurajDXC/crime-report/config"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database handle used by the whole process. The handle is
// returned to the caller and injected into every component that needs it.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	err = database.AutoMigrate(
		&models.User{},
		&models.CrimeType{},
		&models.CrimeReport{},
		&models.Comment{},
		&models.CredibilityRating{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return database, nil
}
