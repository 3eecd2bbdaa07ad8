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

func reviewService() *services.PromotionReviewService {
	return services.NewPromotionReviewService(
		services.NewGormReviewStore(config.DB),
		services.NewGormRequestStore(config.DB),
		services.NewGormUserStore(config.DB),
	)
}

type SubmitReviewBody struct {
	RequestID uint   `json:"promotion_request_id" binding:"required"`
	Decision  string `json:"decision" binding:"required"`
	Comments  string `json:"comments" binding:"required"`
}

// SubmitReview records the caller's decision on a request and advances the
// request status. Resubmitting overwrites the caller's previous review.
func SubmitReview(c *gin.Context) {
	var body SubmitReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewerID, ok := currentUserID(c)
	if !ok {
		return
	}

	review, err := reviewService().SubmitDecision(services.SubmitDecisionInput{
		RequestID:  body.RequestID,
		ReviewerID: reviewerID,
		Decision:   body.Decision,
		Comments:   body.Comments,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	notifyApplicantOfDecision(review)

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// GetReview returns a single review by ID.
func GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := reviewService().Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": review})
}

// GetReviewsByReviewer lists all reviews written by a reviewer.
func GetReviewsByReviewer(c *gin.Context) {
	reviewerID, ok := parseIDParam(c, "reviewerId")
	if !ok {
		return
	}

	reviews, err := reviewService().ListByReviewer(reviewerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

// GetReviewsByRequest lists all reviews on a request.
func GetReviewsByRequest(c *gin.Context) {
	requestID, ok := parseIDParam(c, "requestId")
	if !ok {
		return
	}

	reviews, err := reviewService().ListByRequest(requestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

// GetReviewsByDecision lists reviews carrying the given decision.
func GetReviewsByDecision(c *gin.Context) {
	reviews, err := reviewService().ListByDecision(c.Param("decision"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "total": len(reviews)})
}

// DeleteReview removes a review row. Admin only.
func DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := reviewService().Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// notifyApplicantOfDecision tells the applicant what happened to their
// request. Best effort.
func notifyApplicantOfDecision(review *models.PromotionReview) {
	var request models.PromotionRequest
	if err := config.DB.Where("id = ?", review.RequestID).
		First(&request).Error; err != nil {
		return
	}

	notificationType := models.NotificationInfo
	switch review.Decision {
	case models.DecisionApproved:
		notificationType = models.NotificationSuccess
	case models.DecisionRejected:
		notificationType = models.NotificationError
	}

	requestID := request.ID
	_, err := services.NewNotificationService(config.DB).Notify(services.NotifyInput{
		UserID:    request.ApplicantID,
		RequestID: &requestID,
		Title:     "Promotion request reviewed",
		Message: fmt.Sprintf("Your promotion request #%d received a %s decision; status is now %s.",
			request.ID, review.Decision, request.Status),
		Type: notificationType,
	})
	if err != nil {
		log.Printf("Warning: failed to notify applicant for request %d: %v", request.ID, err)
	}
}
