package models

import (
	"time"
)

// CredibilityRating holds one user's credibility vote on one report. The
// composite unique index makes a resubmission an update, never a second row.
type CredibilityRating struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportID  string    `json:"report_id" gorm:"column:report_id;uniqueIndex:idx_ratings_report_user"`
	UserID    string    `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_ratings_report_user"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type RatingCreate struct {
	Rating *int `json:"rating" binding:"required"`
}

func (CredibilityRating) TableName() string {
	return "credibility_ratings"
}
