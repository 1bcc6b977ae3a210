package models

import (
	"time"
)

// AnonymousName replaces the author's real name on anonymous reports.
const AnonymousName = "Anonymous"

type CrimeReport struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string    `json:"user_id" gorm:"column:user_id"`
	UserName       string    `json:"user_name" gorm:"column:user_name"`
	CrimeType      string    `json:"crime_type" gorm:"column:crime_type"`
	Location       string    `json:"location"`
	Landmark       string    `json:"landmark,omitempty"`
	CrimeTime      time.Time `json:"crime_time" gorm:"column:crime_time"`
	CriminalName   string    `json:"criminal_name,omitempty" gorm:"column:criminal_name"`
	CrimeDetails   string    `json:"crime_details" gorm:"column:crime_details"`
	IsAnonymous    bool      `json:"is_anonymous" gorm:"column:is_anonymous"`
	City           string    `json:"city"`
	ImageBase64    string    `json:"image_base64,omitempty" gorm:"column:image_base64"`
	IsBlocked      bool      `json:"is_blocked" gorm:"column:is_blocked"`
	BlockReason    string    `json:"block_reason,omitempty" gorm:"column:block_reason"`
	AvgCredibility float64   `json:"avg_credibility" gorm:"column:avg_credibility"`
	TotalRatings   int       `json:"total_ratings" gorm:"column:total_ratings"`
	CommentsCount  int       `json:"comments_count" gorm:"column:comments_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// CrimeReportCreate is the JSON payload carried in the crime_data form field.
type CrimeReportCreate struct {
	CrimeType    string    `json:"crime_type"`
	Location     string    `json:"location"`
	Landmark     string    `json:"landmark"`
	CrimeTime    time.Time `json:"crime_time"`
	CriminalName string    `json:"criminal_name"`
	CrimeDetails string    `json:"crime_details"`
	IsAnonymous  bool      `json:"is_anonymous"`
}

type ReportBlock struct {
	IsBlocked bool   `json:"is_blocked"`
	Reason    string `json:"reason"`
}

func (CrimeReport) TableName() string {
	return "crime_reports"
}
