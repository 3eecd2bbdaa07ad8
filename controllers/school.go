package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
	"staff-promotion-api/utils"
)

type SchoolRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	DeanID      *uint  `json:"dean_id"`
}

// CreateSchool creates a new school. Admin only.
func CreateSchool(c *gin.Context) {
	var req SchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	school := models.School{
		Name:        utils.SanitizeInput(req.Name),
		Code:        utils.SanitizeInput(req.Code),
		Description: req.Description,
		DeanID:      req.DeanID,
		IsActive:    true,
	}
	if err := config.DB.Create(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create school"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"school": school})
}

// GetSchools lists all active schools.
func GetSchools(c *gin.Context) {
	var schools []models.School
	if err := config.DB.Preload("Dean").Where("is_active = ?", true).
		Find(&schools).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schools"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"schools": schools,
		"total":   len(schools),
	})
}

// GetSchool returns a single school by ID.
func GetSchool(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var school models.School
	if err := config.DB.Preload("Dean").Where("id = ?", id).
		First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"school": school})
}

// UpdateSchool updates a school. Admin only.
func UpdateSchool(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var school models.School
	if err := config.DB.Where("id = ?", id).First(&school).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	var req SchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	school.Name = utils.SanitizeInput(req.Name)
	school.Code = utils.SanitizeInput(req.Code)
	school.Description = req.Description
	school.DeanID = req.DeanID

	if err := config.DB.Save(&school).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update school"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"school": school})
}

// DeleteSchool deletes a school. Admin only.
func DeleteSchool(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.School{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete school"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "School deleted"})
}
