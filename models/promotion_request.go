package models

import (
	"fmt"
	"strings"
	"time"
)

// RequestStatus is the lifecycle state of a promotion request. Only the
// states the approval flow can actually produce are modeled.
type RequestStatus string

const (
	StatusDraft           RequestStatus = "DRAFT"
	StatusSubmitted       RequestStatus = "SUBMITTED"
	StatusUnderDeanReview RequestStatus = "UNDER_DEAN_REVIEW"
	StatusUnderDVCReview  RequestStatus = "UNDER_DVC_REVIEW"
	StatusApproved        RequestStatus = "APPROVED"
	StatusRejected        RequestStatus = "REJECTED"
)

// ParseRequestStatus maps a case-insensitive status string to its
// RequestStatus value.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusDraft:
		return StatusDraft, nil
	case StatusSubmitted:
		return StatusSubmitted, nil
	case StatusUnderDeanReview:
		return StatusUnderDeanReview, nil
	case StatusUnderDVCReview:
		return StatusUnderDVCReview, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", fmt.Errorf("invalid request status %q", s)
}

type PromotionRequest struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Applicant, department and school are fixed at creation time.
	ApplicantID  uint `gorm:"column:applicant_id" json:"applicant_id"`
	DepartmentID uint `gorm:"column:department_id" json:"department_id"`
	SchoolID     uint `gorm:"column:school_id" json:"school_id"`

	CurrentRank    string        `gorm:"column:current_rank" json:"current_rank"`
	AppliedRank    string        `gorm:"column:applied_rank" json:"applied_rank"`
	Status         RequestStatus `gorm:"column:status" json:"status"`
	Justification  string        `gorm:"column:justification;type:text" json:"justification,omitempty"`
	SubmissionDate *time.Time    `gorm:"column:submission_date" json:"submission_date,omitempty"`

	HodReviewDate   *time.Time `gorm:"column:hod_review_date" json:"hod_review_date,omitempty"`
	DeanReviewDate  *time.Time `gorm:"column:dean_review_date" json:"dean_review_date,omitempty"`
	DvcDecisionDate *time.Time `gorm:"column:dvc_decision_date" json:"dvc_decision_date,omitempty"`
	FinalDecision   *string    `gorm:"column:final_decision" json:"final_decision,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	Applicant  *User             `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
	Department *Department       `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	School     *School           `gorm:"foreignKey:SchoolID" json:"school,omitempty"`
	Reviews    []PromotionReview `gorm:"foreignKey:RequestID" json:"reviews,omitempty"`
	Documents  []Document        `gorm:"foreignKey:RequestID" json:"documents,omitempty"`
}

func (PromotionRequest) TableName() string {
	return "promotion_requests"
}
