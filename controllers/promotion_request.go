package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
	"staff-promotion-api/services"
)

func requestService() *services.PromotionRequestService {
	return services.NewPromotionRequestService(
		services.NewGormRequestStore(config.DB),
		services.NewGormUserStore(config.DB),
	)
}

type CreatePromotionRequestBody struct {
	CurrentRank   string `json:"current_rank" binding:"required"`
	AppliedRank   string `json:"applied_rank" binding:"required"`
	Justification string `json:"justification"`
}

// CreatePromotionRequest opens a DRAFT request for the applicant in the path.
func CreatePromotionRequest(c *gin.Context) {
	applicantID, ok := parseIDParam(c, "applicantId")
	if !ok {
		return
	}

	var body CreatePromotionRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := requestService().Create(applicantID, services.CreateRequestInput{
		CurrentRank:   body.CurrentRank,
		AppliedRank:   body.AppliedRank,
		Justification: body.Justification,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// SubmitPromotionRequest moves the request to SUBMITTED and notifies the
// head of the applicant's department.
func SubmitPromotionRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	request, err := requestService().Submit(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	notifyDepartmentHead(request)

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// GetPromotionRequest returns a request with its relations.
func GetPromotionRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var request models.PromotionRequest
	if err := config.DB.Preload("Applicant").Preload("Department").
		Preload("School").Preload("Reviews").Preload("Documents").
		Where("id = ?", id).First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promotion request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// UpdatePromotionRequest overwrites the rank fields.
func UpdatePromotionRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		CurrentRank string `json:"current_rank" binding:"required"`
		AppliedRank string `json:"applied_rank" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := requestService().Update(id, services.UpdateRequestInput{
		CurrentRank: body.CurrentRank,
		AppliedRank: body.AppliedRank,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// DeletePromotionRequest removes a request and its reviews.
func DeletePromotionRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := requestService().Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Promotion request deleted"})
}

// GetPromotionRequestsByApplicant lists the applicant's requests.
func GetPromotionRequestsByApplicant(c *gin.Context) {
	applicantID, ok := parseIDParam(c, "applicantId")
	if !ok {
		return
	}

	requests, err := requestService().ListByApplicant(applicantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// GetPromotionRequestsByStatus lists requests in the given status.
func GetPromotionRequestsByStatus(c *gin.Context) {
	requests, err := requestService().ListByStatus(c.Param("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// GetPromotionRequestsByDepartment lists a department's requests.
func GetPromotionRequestsByDepartment(c *gin.Context) {
	departmentID, ok := parseIDParam(c, "deptId")
	if !ok {
		return
	}

	requests, err := requestService().ListByDepartment(departmentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// GetPromotionRequestsBySchool lists a school's requests.
func GetPromotionRequestsBySchool(c *gin.Context) {
	schoolID, ok := parseIDParam(c, "schoolId")
	if !ok {
		return
	}

	requests, err := requestService().ListBySchool(schoolID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests, "total": len(requests)})
}

// notifyDepartmentHead tells the applicant's HOD that a request is waiting.
// Best effort: failures are logged and the submission still succeeds.
func notifyDepartmentHead(request *models.PromotionRequest) {
	var department models.Department
	if err := config.DB.Where("id = ?", request.DepartmentID).
		First(&department).Error; err != nil || department.HeadID == nil {
		return
	}

	requestID := request.ID
	_, err := services.NewNotificationService(config.DB).Notify(services.NotifyInput{
		UserID:    *department.HeadID,
		RequestID: &requestID,
		Title:     "Promotion request submitted",
		Message: fmt.Sprintf("Promotion request #%d (%s to %s) is awaiting department review.",
			request.ID, request.CurrentRank, request.AppliedRank),
		Type: models.NotificationInfo,
	})
	if err != nil {
		log.Printf("Warning: failed to notify department head for request %d: %v", request.ID, err)
	}
}
