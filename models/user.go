package models

import (
	"time"
)

// DefaultCity is used when a user registers without specifying a city.
const DefaultCity = "Bhopal"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city"`
	IsAdmin   bool      `json:"is_admin" gorm:"column:is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type UserCreate struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (User) TableName() string {
	return "users"
}
