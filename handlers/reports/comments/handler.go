package comments

import (
	"net/http"
	"strconv"

	"github.com/SurajDXC/crime-report/middleware"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/services"
	"github.com/SurajDXC/crime-report/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB    *gorm.DB
	Stats *services.StatsService
}

func New(db *gorm.DB, stats *services.StatsService) *Handler {
	return &Handler{DB: db, Stats: stats}
}

// @Summary Comment on a crime report
// @Description Add a comment to an unblocked report
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param comment body models.CommentCreate true "Comment content"
// @Security BearerAuth
// @Success 201 {object} models.Comment
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Crime report not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports/{id}/comments [post]
func (h *Handler) Create(c *gin.Context) {
	reportID := c.Param("id")

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var report models.CrimeReport
	if err := h.DB.First(&report, "id = ? AND is_blocked = ?", reportID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		return
	}

	var input models.CommentCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	comment := models.Comment{
		ReportID:    reportID,
		UserID:      user.ID,
		UserName:    user.Name,
		CommentText: input.CommentText,
	}

	if err := h.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating comment: " + err.Error()})
		return
	}

	if err := h.Stats.Reconcile(reportID); err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error reconciling report statistics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating report statistics"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// @Summary List comments on a crime report
// @Description Comments in conversational order, oldest first
// @Tags comments
// @Produce json
// @Param id path string true "Report ID"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {array} models.Comment
// @Failure 404 {object} map[string]string "error: Crime report not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports/{id}/comments [get]
func (h *Handler) List(c *gin.Context) {
	reportID := c.Param("id")

	var report models.CrimeReport
	if err := h.DB.First(&report, "id = ? AND is_blocked = ?", reportID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	comments := []models.Comment{}
	err := h.DB.Where("report_id = ?", reportID).
		Order("created_at ASC").
		Offset(skip).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving comments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, comments)
}
