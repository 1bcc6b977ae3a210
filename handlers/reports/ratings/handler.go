package ratings

import (
	"errors"
	"net/http"

	"github.com/SurajDXC/crime-report/middleware"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/services"
	"github.com/SurajDXC/crime-report/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Handler struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func New(db *gorm.DB, stats *services.StatsService) *Handler {
	return &Handler{DB: db, Stats: stats}
}

// @Summary Rate a crime report's credibility
// @Description Submit a 0-10 rating. Rating the same report again overwrites
// @Description the previous value, it never creates a second record.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param rating body models.RatingCreate true "Rating value"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Rating saved successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Crime report not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports/{id}/rating [post]
func (h *Handler) Rate(c *gin.Context) {
	reportID := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var input models.RatingCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if *input.Rating < 0 || *input.Rating > 10 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 0 and 10"})
		return
	}

	var report models.CrimeReport
	if err := h.DB.First(&report, "id = ? AND is_blocked = ?", reportID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		return
	}

	// Atomic upsert on the (report_id, user_id) unique index, concurrent
	// first-ratings cannot produce duplicate rows.
	rating := models.CredibilityRating{
		ReportID: reportID,
		UserID:   user.ID,
		Rating:   *input.Rating,
	}
	err := h.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"rating": *input.Rating}),
	}).Create(&rating).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving rating: " + err.Error()})
		return
	}

	if err := h.Stats.Reconcile(reportID); err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error reconciling report statistics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating report statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating saved successfully"})
}

// @Summary Get own rating on a crime report
// @Description Returns the caller's rating, or null if they have not rated yet
// @Tags ratings
// @Produce json
// @Param id path string true "Report ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "rating: number or null"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports/{id}/rating [get]
func (h *Handler) GetOwn(c *gin.Context) {
	reportID := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var rating models.CredibilityRating
	err := h.DB.Where("report_id = ? AND user_id = ?", reportID, user.ID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"rating": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving rating: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating.Rating})
}
