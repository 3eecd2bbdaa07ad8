package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
	"staff-promotion-api/utils"
)

type RegisterUserRequest struct {
	FullName     string  `json:"full_name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	DepartmentID *uint   `json:"department_id"`
	SchoolID     *uint   `json:"school_id"`
	PhoneNumber  *string `json:"phone_number"`
	EmployeeID   *string `json:"employee_id"`
	CurrentRank  *string `json:"current_rank"`
}

// RegisterUser creates a new account. Admin only.
func RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	// Department/school references must exist when provided.
	if req.DepartmentID != nil {
		var department models.Department
		if err := config.DB.First(&department, *req.DepartmentID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid department"})
			return
		}
	}
	if req.SchoolID != nil {
		var school models.School
		if err := config.DB.First(&school, *req.SchoolID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		FullName:     utils.SanitizeInput(req.FullName),
		Email:        req.Email,
		Password:     string(hashed),
		Role:         models.Role(req.Role),
		DepartmentID: req.DepartmentID,
		SchoolID:     req.SchoolID,
		PhoneNumber:  req.PhoneNumber,
		EmployeeID:   req.EmployeeID,
		CurrentRank:  req.CurrentRank,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUsers lists users, optionally filtered by role, department or school.
func GetUsers(c *gin.Context) {
	query := config.DB.Preload("Department").Preload("School").
		Where("is_active = ?", true)

	if role := c.Query("role"); role != "" {
		if !models.ValidRole(role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role filter"})
			return
		}
		query = query.Where("role = ?", role)
	}
	if department := c.Query("department_id"); department != "" {
		query = query.Where("department_id = ?", department)
	}
	if school := c.Query("school_id"); school != "" {
		query = query.Where("school_id = ?", school)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GetUser returns a single user by ID.
func GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.Preload("Department").Preload("School").
		Where("id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
