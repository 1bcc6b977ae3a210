package crimetypes

import (
	"net/http"

	"github.com/SurajDXC/crime-report/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// @Summary List crime types
// @Description Retrieve the crime-type vocabulary
// @Tags crime-types
// @Produce json
// @Success 200 {array} models.CrimeType
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /crime-types [get]
func (h *Handler) List(c *gin.Context) {
	crimeTypes := []models.CrimeType{}

	result := h.DB.Order("name ASC").Find(&crimeTypes)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, crimeTypes)
}

// @Summary Create a crime type
// @Description Add a name to the crime-type vocabulary
// @Tags crime-types
// @Accept json
// @Produce json
// @Param crimeType body models.CrimeTypeCreate true "Crime type information"
// @Security BearerAuth
// @Success 201 {object} models.CrimeType
// @Failure 400 {object} map[string]string "error: Invalid input or duplicate name"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/crime-types [post]
func (h *Handler) Create(c *gin.Context) {
	var input models.CrimeTypeCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	var existing models.CrimeType
	if err := h.DB.First(&existing, "name = ?", input.Name).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Crime type already exists",
		})
		return
	}

	crimeType := models.CrimeType{
		Name: input.Name,
	}

	if err := h.DB.Create(&crimeType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error creating crime type: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, crimeType)
}

// @Summary Rename a crime type
// @Description Update a crime type's name. Existing reports keep the name
// @Description they were created with.
// @Tags crime-types
// @Accept json
// @Produce json
// @Param id path string true "Crime type ID"
// @Param crimeType body models.CrimeTypeCreate true "Updated name"
// @Security BearerAuth
// @Success 200 {object} models.CrimeType
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Crime type not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/crime-types/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	crimeTypeID := c.Param("id")

	var crimeType models.CrimeType
	if err := h.DB.First(&crimeType, "id = ?", crimeTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime type not found"})
		return
	}

	var input models.CrimeTypeCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	crimeType.Name = input.Name

	if err := h.DB.Save(&crimeType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating crime type: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, crimeType)
}

// @Summary Delete a crime type
// @Description Remove a crime type. Reports tagged with it are not touched.
// @Tags crime-types
// @Produce json
// @Param id path string true "Crime type ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Crime type deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Failure 404 {object} map[string]string "error: Crime type not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /admin/crime-types/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	crimeTypeID := c.Param("id")

	var crimeType models.CrimeType
	if err := h.DB.First(&crimeType, "id = ?", crimeTypeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Crime type not found"})
		return
	}

	if err := h.DB.Delete(&crimeType).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting crime type: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Crime type deleted successfully"})
}
