package models

import (
	"fmt"
	"strings"
	"time"
)

// ReviewDecision is a reviewer's verdict on a promotion request.
type ReviewDecision string

const (
	DecisionApproved  ReviewDecision = "APPROVED"
	DecisionRejected  ReviewDecision = "REJECTED"
	DecisionRecommend ReviewDecision = "RECOMMEND"
)

// ParseReviewDecision maps a case-insensitive decision string to its
// ReviewDecision value.
func ParseReviewDecision(s string) (ReviewDecision, error) {
	switch ReviewDecision(strings.ToUpper(strings.TrimSpace(s))) {
	case DecisionApproved:
		return DecisionApproved, nil
	case DecisionRejected:
		return DecisionRejected, nil
	case DecisionRecommend:
		return DecisionRecommend, nil
	}
	return "", fmt.Errorf("invalid decision value %q", s)
}

// PromotionReview holds the current decision of one reviewer on one request.
// A reviewer resubmitting replaces the existing row; the table is keyed by
// (request_id, reviewer_id) and is not an audit log.
type PromotionReview struct {
	ID         uint `gorm:"primaryKey;column:id" json:"id"`
	RequestID  uint `gorm:"column:promotion_request_id;uniqueIndex:uniq_request_reviewer" json:"promotion_request_id"`
	ReviewerID uint `gorm:"column:reviewer_id;uniqueIndex:uniq_request_reviewer" json:"reviewer_id"`

	// ReviewerRole is the role held at review time, not recomputed later.
	ReviewerRole Role           `gorm:"column:reviewer_role" json:"reviewer_role"`
	Decision     ReviewDecision `gorm:"column:decision" json:"decision"`
	Comments     string         `gorm:"column:comments;type:text" json:"comments"`
	ReviewDate   time.Time      `gorm:"column:review_date" json:"review_date"`
	CreatedAt    time.Time      `gorm:"column:created_at" json:"created_at"`

	// Relations
	Request  *PromotionRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Reviewer *User             `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

func (PromotionReview) TableName() string {
	return "promotion_reviews"
}
