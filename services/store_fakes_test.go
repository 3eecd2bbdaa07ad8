package services

import (
	"fmt"

	"staff-promotion-api/models"
)

// In-memory stores implementing the store interfaces, so the lifecycle and
// review services can be tested without a database.

type memUserStore struct {
	users map[uint]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]*models.User)}
}

func (s *memUserStore) put(user *models.User) {
	s.users[user.ID] = user
}

func (s *memUserStore) FindByID(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	copied := *user
	return &copied, nil
}

type memReviewStore struct {
	seq     uint
	reviews map[uint]*models.PromotionReview
}

func newMemReviewStore() *memReviewStore {
	return &memReviewStore{reviews: make(map[uint]*models.PromotionReview)}
}

func (s *memReviewStore) FindByID(id uint) (*models.PromotionReview, error) {
	review, ok := s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("%w: promotion review %d", ErrNotFound, id)
	}
	copied := *review
	return &copied, nil
}

func (s *memReviewStore) FindByRequestAndReviewer(requestID, reviewerID uint) (*models.PromotionReview, error) {
	for _, review := range s.reviews {
		if review.RequestID == requestID && review.ReviewerID == reviewerID {
			copied := *review
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memReviewStore) FindByReviewer(reviewerID uint) ([]models.PromotionReview, error) {
	var out []models.PromotionReview
	for _, review := range s.reviews {
		if review.ReviewerID == reviewerID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (s *memReviewStore) FindByRequest(requestID uint) ([]models.PromotionReview, error) {
	var out []models.PromotionReview
	for _, review := range s.reviews {
		if review.RequestID == requestID {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (s *memReviewStore) FindByDecision(decision models.ReviewDecision) ([]models.PromotionReview, error) {
	var out []models.PromotionReview
	for _, review := range s.reviews {
		if review.Decision == decision {
			out = append(out, *review)
		}
	}
	return out, nil
}

func (s *memReviewStore) Save(review *models.PromotionReview) error {
	if review.ID == 0 {
		s.seq++
		review.ID = s.seq
	}
	copied := *review
	s.reviews[review.ID] = &copied
	return nil
}

func (s *memReviewStore) DeleteByID(id uint) error {
	delete(s.reviews, id)
	return nil
}

func (s *memReviewStore) ExistsByID(id uint) (bool, error) {
	_, ok := s.reviews[id]
	return ok, nil
}

type memRequestStore struct {
	seq      uint
	requests map[uint]*models.PromotionRequest
	reviews  *memReviewStore
}

func newMemRequestStore(reviews *memReviewStore) *memRequestStore {
	return &memRequestStore{
		requests: make(map[uint]*models.PromotionRequest),
		reviews:  reviews,
	}
}

func (s *memRequestStore) FindByID(id uint) (*models.PromotionRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("%w: promotion request %d", ErrNotFound, id)
	}
	copied := *request
	return &copied, nil
}

func (s *memRequestStore) FindByApplicant(applicantID uint) ([]models.PromotionRequest, error) {
	var out []models.PromotionRequest
	for _, request := range s.requests {
		if request.ApplicantID == applicantID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (s *memRequestStore) FindByStatus(status models.RequestStatus) ([]models.PromotionRequest, error) {
	var out []models.PromotionRequest
	for _, request := range s.requests {
		if request.Status == status {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (s *memRequestStore) FindByDepartment(departmentID uint) ([]models.PromotionRequest, error) {
	var out []models.PromotionRequest
	for _, request := range s.requests {
		if request.DepartmentID == departmentID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (s *memRequestStore) FindBySchool(schoolID uint) ([]models.PromotionRequest, error) {
	var out []models.PromotionRequest
	for _, request := range s.requests {
		if request.SchoolID == schoolID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (s *memRequestStore) Save(request *models.PromotionRequest) error {
	if request.ID == 0 {
		s.seq++
		request.ID = s.seq
	}
	copied := *request
	s.requests[request.ID] = &copied
	return nil
}

func (s *memRequestStore) Delete(request *models.PromotionRequest) error {
	for id, review := range s.reviews.reviews {
		if review.RequestID == request.ID {
			delete(s.reviews.reviews, id)
		}
	}
	delete(s.requests, request.ID)
	return nil
}
