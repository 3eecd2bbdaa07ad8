package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
	"staff-promotion-api/utils"
)

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description"`
	SchoolID    uint   `json:"school_id" binding:"required"`
	HeadID      *uint  `json:"hod_id"`
}

// CreateDepartment creates a new department under a school. Admin only.
func CreateDepartment(c *gin.Context) {
	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var school models.School
	if err := config.DB.First(&school, req.SchoolID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school"})
		return
	}

	department := models.Department{
		Name:        utils.SanitizeInput(req.Name),
		Code:        utils.SanitizeInput(req.Code),
		Description: req.Description,
		SchoolID:    req.SchoolID,
		HeadID:      req.HeadID,
		IsActive:    true,
	}
	if err := config.DB.Create(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create department"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"department": department})
}

// GetDepartments lists active departments, optionally scoped to a school.
func GetDepartments(c *gin.Context) {
	query := config.DB.Preload("School").Preload("HeadOfDepartment").
		Where("is_active = ?", true)

	if school := c.Query("school_id"); school != "" {
		query = query.Where("school_id = ?", school)
	}

	var departments []models.Department
	if err := query.Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch departments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"departments": departments,
		"total":       len(departments),
	})
}

// GetDepartment returns a single department by ID.
func GetDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var department models.Department
	if err := config.DB.Preload("School").Preload("HeadOfDepartment").
		Where("id = ?", id).First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"department": department})
}

// UpdateDepartment updates a department. Admin only.
func UpdateDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var department models.Department
	if err := config.DB.Where("id = ?", id).First(&department).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	var req DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var school models.School
	if err := config.DB.First(&school, req.SchoolID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school"})
		return
	}

	department.Name = utils.SanitizeInput(req.Name)
	department.Code = utils.SanitizeInput(req.Code)
	department.Description = req.Description
	department.SchoolID = req.SchoolID
	department.HeadID = req.HeadID

	if err := config.DB.Save(&department).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update department"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"department": department})
}

// DeleteDepartment deletes a department. Admin only.
func DeleteDepartment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Department{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete department"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Department not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Department deleted"})
}
