package models

import (
	"time"
)

type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportID    string    `json:"report_id" gorm:"column:report_id;index"`
	UserID      string    `json:"user_id" gorm:"column:user_id"`
	UserName    string    `json:"user_name" gorm:"column:user_name"`
	CommentText string    `json:"comment_text" gorm:"column:comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentCreate struct {
	CommentText string `json:"comment_text" binding:"required"`
}

func (Comment) TableName() string {
	return "comments"
}
