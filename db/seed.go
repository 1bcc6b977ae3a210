package db

import (
	"errors"

	"github.com/SurajDXC/crime-report/config"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var defaultCrimeTypes = []string{
	"Forced Conversion (Love Jihad)",
	"Illegal Trafficking",
	"Illegal Animal Trafficking",
	"Illegal Drug",
}

// Seed installs the default crime-type vocabulary and the administrator
// account on first boot. Both steps are no-ops when the data already exists,
// in particular the admin credential is never reset on restart.
func Seed(database *gorm.DB, cfg *config.Config) error {
	if err := seedCrimeTypes(database); err != nil {
		return err
	}
	return seedAdmin(database, cfg)
}

func seedCrimeTypes(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.CrimeType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultCrimeTypes {
		if err := database.Create(&models.CrimeType{Name: name}).Error; err != nil {
			return err
		}
	}
	utils.LogSuccess("Default crime types seeded")
	return nil
}

func seedAdmin(database *gorm.DB, cfg *config.Config) error {
	var admin models.User
	err := database.Where("is_admin = ?", true).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin = models.User{
		Name:     "Admin",
		Email:    cfg.AdminEmail,
		Password: string(hash),
		City:     models.DefaultCity,
		IsAdmin:  true,
	}
	if err := database.Create(&admin).Error; err != nil {
		return err
	}
	utils.LogSuccess("Administrator account seeded")
	return nil
}
