package services

import (
	"fmt"
	"time"

	"staff-promotion-api/models"
)

// PromotionRequestService manages the lifecycle of promotion requests:
// creation, submission, rank edits, deletion and the read projections.
// Status transitions past SUBMITTED belong to PromotionReviewService.
type PromotionRequestService struct {
	requests RequestStore
	users    UserStore
}

func NewPromotionRequestService(requests RequestStore, users UserStore) *PromotionRequestService {
	return &PromotionRequestService{requests: requests, users: users}
}

type CreateRequestInput struct {
	CurrentRank   string
	AppliedRank   string
	Justification string
}

// Create opens a DRAFT request for the applicant. Department and school are
// copied from the applicant's current assignment and never re-derived.
func (s *PromotionRequestService) Create(applicantID uint, in CreateRequestInput) (*models.PromotionRequest, error) {
	applicant, err := s.users.FindByID(applicantID)
	if err != nil {
		return nil, err
	}

	if applicant.DepartmentID == nil {
		return nil, fmt.Errorf("%w: applicant has no department assigned", ErrInvalidState)
	}
	if applicant.SchoolID == nil {
		return nil, fmt.Errorf("%w: applicant has no school assigned", ErrInvalidState)
	}

	request := &models.PromotionRequest{
		ApplicantID:   applicant.ID,
		DepartmentID:  *applicant.DepartmentID,
		SchoolID:      *applicant.SchoolID,
		CurrentRank:   in.CurrentRank,
		AppliedRank:   in.AppliedRank,
		Justification: in.Justification,
		Status:        models.StatusDraft,
	}
	if err := s.requests.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *PromotionRequestService) Get(id uint) (*models.PromotionRequest, error) {
	return s.requests.FindByID(id)
}

func (s *PromotionRequestService) ListByApplicant(applicantID uint) ([]models.PromotionRequest, error) {
	return s.requests.FindByApplicant(applicantID)
}

func (s *PromotionRequestService) ListByStatus(status string) ([]models.PromotionRequest, error) {
	parsed, err := models.ParseRequestStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return s.requests.FindByStatus(parsed)
}

func (s *PromotionRequestService) ListByDepartment(departmentID uint) ([]models.PromotionRequest, error) {
	return s.requests.FindByDepartment(departmentID)
}

func (s *PromotionRequestService) ListBySchool(schoolID uint) ([]models.PromotionRequest, error) {
	return s.requests.FindBySchool(schoolID)
}

type UpdateRequestInput struct {
	CurrentRank string
	AppliedRank string
}

// Update overwrites the rank fields only. There is no guard on the current
// status; a request already under review or decided can still be edited.
func (s *PromotionRequestService) Update(id uint, in UpdateRequestInput) (*models.PromotionRequest, error) {
	request, err := s.requests.FindByID(id)
	if err != nil {
		return nil, err
	}

	request.CurrentRank = in.CurrentRank
	request.AppliedRank = in.AppliedRank

	if err := s.requests.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

// Submit marks the request SUBMITTED and stamps the submission date. It does
// not check the previous status, so resubmission is not blocked.
func (s *PromotionRequestService) Submit(id uint) (*models.PromotionRequest, error) {
	request, err := s.requests.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.StatusSubmitted
	request.SubmissionDate = &now

	if err := s.requests.Save(request); err != nil {
		return nil, err
	}
	return request, nil
}

// Delete removes the request and cascades to its reviews.
func (s *PromotionRequestService) Delete(id uint) error {
	request, err := s.requests.FindByID(id)
	if err != nil {
		return err
	}
	return s.requests.Delete(request)
}
