package config

import (
	"fmt"
	"os"

	"github.com/SurajDXC/crime-report/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file found, using the system environment")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DB_URL"),
		Port:          os.Getenv("PORT"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DB_URL is not configured")
	}
	if os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@crimereport.com"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "Asdf123$"
	}

	return cfg, nil
}
