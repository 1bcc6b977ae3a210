package services

import (
	"gorm.io/gorm"
)

// StatsService owns the three derived aggregate fields on crime_reports. No
// handler writes them directly.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// Reconcile recomputes avg_credibility (mean rounded to one decimal, 0.0 for
// an empty set), total_ratings and comments_count from the child tables. The
// aggregates are computed by the database inside a single UPDATE, so two
// concurrent reconciliations cannot interleave a stale read with a write.
func (s *StatsService) Reconcile(reportID string) error {
	return s.db.Exec(`UPDATE crime_reports SET
		avg_credibility = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM credibility_ratings WHERE report_id = ?), 0),
		total_ratings = (SELECT COUNT(*) FROM credibility_ratings WHERE report_id = ?),
		comments_count = (SELECT COUNT(*) FROM comments WHERE report_id = ?)
		WHERE id = ?`,
		reportID, reportID, reportID, reportID).Error
}
