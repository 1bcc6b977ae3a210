package models

import (
	"time"
)

type CrimeType struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
}

type CrimeTypeCreate struct {
	Name string `json:"name" binding:"required"`
}

func (CrimeType) TableName() string {
	return "crime_types"
}
