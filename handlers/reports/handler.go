package reports

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/SurajDXC/crime-report/middleware"
	"github.com/SurajDXC/crime-report/models"
	"github.com/SurajDXC/crime-report/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// @Summary Submit a crime report
// @Description Create a report from the crime_data JSON form field plus an optional image (max 2MB)
// @Tags crime-reports
// @Accept multipart/form-data
// @Produce json
// @Param crime_data formData string true "Report fields as JSON"
// @Param image formData file false "Photo of the incident"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message, report"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	crimeData := c.Request.FormValue("crime_data")
	if crimeData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crime_data is required"})
		return
	}

	var input models.CrimeReportCreate
	if err := json.Unmarshal([]byte(crimeData), &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data: " + err.Error()})
		return
	}

	if input.CrimeType == "" || input.Location == "" || input.CrimeDetails == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crime_type, location and crime_details are required"})
		return
	}
	if input.CrimeTime.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crime_time is required"})
		return
	}

	imageBase64 := ""
	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if file.Size > utils.MaxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image size must be less than 2MB"})
			return
		}

		opened, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading image: " + err.Error()})
			return
		}
		defer opened.Close()

		content, err := io.ReadAll(opened)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading image: " + err.Error()})
			return
		}

		normalized := utils.NormalizeImage(content, utils.MaxImageBytes)
		imageBase64 = base64.StdEncoding.EncodeToString(normalized.Data)
	}

	userName := user.Name
	if input.IsAnonymous {
		userName = models.AnonymousName
	}

	report := models.CrimeReport{
		UserID:       user.ID,
		UserName:     userName,
		CrimeType:    input.CrimeType,
		Location:     input.Location,
		Landmark:     input.Landmark,
		CrimeTime:    input.CrimeTime,
		CriminalName: input.CriminalName,
		CrimeDetails: input.CrimeDetails,
		IsAnonymous:  input.IsAnonymous,
		City:         user.City,
		ImageBase64:  imageBase64,
	}

	if err := h.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating crime report: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Crime report submitted")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Crime report submitted successfully",
		"report":  report,
	})
}

// @Summary List crime reports
// @Description Public report feed, newest first. Blocked reports are excluded.
// @Tags crime-reports
// @Produce json
// @Param city query string false "City (defaults to Bhopal)"
// @Param crime_type query string false "Exact crime-type name"
// @Param location query string false "Substring match on location"
// @Param search query string false "Substring match across details, location, suspect and landmark"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {array} models.CrimeReport
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-reports [get]
func (h *Handler) List(c *gin.Context) {
	city := c.DefaultQuery("city", models.DefaultCity)
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 20)

	query := h.DB.Where("city = ? AND is_blocked = ?", city, false)

	if crimeType := c.Query("crime_type"); crimeType != "" {
		query = query.Where("crime_type = ?", crimeType)
	}

	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"(crime_details ILIKE ? OR location ILIKE ? OR criminal_name ILIKE ? OR landmark ILIKE ?)",
			pattern, pattern, pattern, pattern,
		)
	}

	reports := []models.CrimeReport{}
	if err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving crime reports: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Get a crime report
// @Description A blocked report is indistinguishable from a missing one.
// @Tags crime-reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} models.CrimeReport
// @Failure 404 {object} map[string]string "error: Crime report not found"
// @Router /crime-reports/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	reportID := c.Param("id")

	var report models.CrimeReport
	if err := h.DB.First(&report, "id = ?", reportID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		return
	}

	if report.IsBlocked {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// @Summary List all crime reports (admin)
// @Description Same feed as the public list but including blocked reports.
// @Tags admin
// @Produce json
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size (default 50)"
// @Security BearerAuth
// @Success 200 {array} models.CrimeReport
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/crime-reports [get]
func (h *Handler) AdminList(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 50)

	reports := []models.CrimeReport{}
	if err := h.DB.Order("created_at DESC").Offset(skip).Limit(limit).Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving crime reports: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Block or unblock a crime report
// @Description Toggle the moderation flag. The reason is stored while blocked.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param block body models.ReportBlock true "Block state and optional reason"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Crime report not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/crime-reports/{id}/block [put]
func (h *Handler) Block(c *gin.Context) {
	reportID := c.Param("id")

	var input models.ReportBlock
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var report models.CrimeReport
	if err := h.DB.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Crime report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	reason := input.Reason
	if !input.IsBlocked {
		reason = ""
	}

	updates := map[string]interface{}{
		"is_blocked":   input.IsBlocked,
		"block_reason": reason,
	}
	if err := h.DB.Model(&report).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating crime report: " + err.Error()})
		return
	}

	action := "unblocked"
	if input.IsBlocked {
		action = "blocked"
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crime report " + action + " successfully"})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
