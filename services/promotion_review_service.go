package services

import (
	"fmt"
	"strings"
	"time"

	"staff-promotion-api/models"
)

// PromotionReviewService records reviewer decisions and drives the request
// status forward. A decision is two writes: the review upsert, then the
// status update; there is no transaction spanning both.
type PromotionReviewService struct {
	reviews  ReviewStore
	requests RequestStore
	users    UserStore
}

func NewPromotionReviewService(reviews ReviewStore, requests RequestStore, users UserStore) *PromotionReviewService {
	return &PromotionReviewService{reviews: reviews, requests: requests, users: users}
}

type SubmitDecisionInput struct {
	RequestID  uint
	ReviewerID uint
	Decision   string
	Comments   string
}

// SubmitDecision upserts the reviewer's review of the request and advances
// the request status according to the decision:
//
//   - APPROVED moves the request to the next stage for the reviewer's
//     current role (see approvalTransitions); roles outside the chain fail
//     with ErrInvalidState.
//   - REJECTED sets the request to REJECTED regardless of role or current
//     status.
//   - RECOMMEND records the review and changes nothing.
//
// The reviewer's role is snapshotted onto the review row. The request's
// current status is never consulted: the caller's role alone decides the
// transition.
func (s *PromotionReviewService) SubmitDecision(in SubmitDecisionInput) (*models.PromotionReview, error) {
	decision, err := models.ParseReviewDecision(in.Decision)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if strings.TrimSpace(in.Comments) == "" {
		return nil, fmt.Errorf("%w: comments are required", ErrInvalidArgument)
	}

	request, err := s.requests.FindByID(in.RequestID)
	if err != nil {
		return nil, err
	}
	reviewer, err := s.users.FindByID(in.ReviewerID)
	if err != nil {
		return nil, err
	}

	// One review per (request, reviewer): a resubmission overwrites the
	// existing row rather than creating history.
	review, err := s.reviews.FindByRequestAndReviewer(request.ID, reviewer.ID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		review = &models.PromotionReview{
			RequestID:  request.ID,
			ReviewerID: reviewer.ID,
		}
	}
	review.ReviewerRole = reviewer.Role
	review.Decision = decision
	review.Comments = in.Comments
	review.ReviewDate = time.Now()

	if err := s.reviews.Save(review); err != nil {
		return nil, err
	}

	switch decision {
	case models.DecisionApproved:
		next, ok := NextStatusOnApproval(reviewer.Role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role for approval flow: %s", ErrInvalidState, reviewer.Role)
		}
		request.Status = next
		if err := s.requests.Save(request); err != nil {
			return nil, err
		}
	case models.DecisionRejected:
		request.Status = models.StatusRejected
		if err := s.requests.Save(request); err != nil {
			return nil, err
		}
	case models.DecisionRecommend:
		// Recorded only; no status transition.
	}

	return review, nil
}

func (s *PromotionReviewService) Get(id uint) (*models.PromotionReview, error) {
	return s.reviews.FindByID(id)
}

func (s *PromotionReviewService) ListByReviewer(reviewerID uint) ([]models.PromotionReview, error) {
	if _, err := s.users.FindByID(reviewerID); err != nil {
		return nil, err
	}
	return s.reviews.FindByReviewer(reviewerID)
}

func (s *PromotionReviewService) ListByRequest(requestID uint) ([]models.PromotionReview, error) {
	if _, err := s.requests.FindByID(requestID); err != nil {
		return nil, err
	}
	return s.reviews.FindByRequest(requestID)
}

func (s *PromotionReviewService) ListByDecision(decision string) ([]models.PromotionReview, error) {
	parsed, err := models.ParseReviewDecision(decision)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return s.reviews.FindByDecision(parsed)
}

func (s *PromotionReviewService) Delete(id uint) error {
	exists, err := s.reviews.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: promotion review %d", ErrNotFound, id)
	}
	return s.reviews.DeleteByID(id)
}
