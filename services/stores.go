package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"staff-promotion-api/models"
)

// RequestStore is the persistence surface for promotion requests. FindByID
// reports a missing row as ErrNotFound; the list methods return empty slices.
type RequestStore interface {
	FindByID(id uint) (*models.PromotionRequest, error)
	FindByApplicant(applicantID uint) ([]models.PromotionRequest, error)
	FindByStatus(status models.RequestStatus) ([]models.PromotionRequest, error)
	FindByDepartment(departmentID uint) ([]models.PromotionRequest, error)
	FindBySchool(schoolID uint) ([]models.PromotionRequest, error)
	Save(request *models.PromotionRequest) error
	Delete(request *models.PromotionRequest) error
}

// ReviewStore is the review ledger: at most one row per (request, reviewer)
// pair. FindByRequestAndReviewer returns (nil, nil) when no row exists so
// callers can branch between create and overwrite.
type ReviewStore interface {
	FindByID(id uint) (*models.PromotionReview, error)
	FindByRequestAndReviewer(requestID, reviewerID uint) (*models.PromotionReview, error)
	FindByReviewer(reviewerID uint) ([]models.PromotionReview, error)
	FindByRequest(requestID uint) ([]models.PromotionReview, error)
	FindByDecision(decision models.ReviewDecision) ([]models.PromotionReview, error)
	Save(review *models.PromotionReview) error
	DeleteByID(id uint) error
	ExistsByID(id uint) (bool, error)
}

// UserStore resolves users for the lifecycle and review services.
type UserStore interface {
	FindByID(id uint) (*models.User, error)
}

/* ==========================
   GORM-backed implementations
   ========================== */

type GormRequestStore struct {
	db *gorm.DB
}

func NewGormRequestStore(db *gorm.DB) *GormRequestStore {
	return &GormRequestStore{db: db}
}

func (s *GormRequestStore) FindByID(id uint) (*models.PromotionRequest, error) {
	var request models.PromotionRequest
	if err := s.db.Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: promotion request %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load promotion request: %w", err)
	}
	return &request, nil
}

func (s *GormRequestStore) FindByApplicant(applicantID uint) ([]models.PromotionRequest, error) {
	var requests []models.PromotionRequest
	if err := s.db.Where("applicant_id = ?", applicantID).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list promotion requests: %w", err)
	}
	return requests, nil
}

func (s *GormRequestStore) FindByStatus(status models.RequestStatus) ([]models.PromotionRequest, error) {
	var requests []models.PromotionRequest
	if err := s.db.Where("status = ?", status).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list promotion requests: %w", err)
	}
	return requests, nil
}

func (s *GormRequestStore) FindByDepartment(departmentID uint) ([]models.PromotionRequest, error) {
	var requests []models.PromotionRequest
	if err := s.db.Where("department_id = ?", departmentID).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list promotion requests: %w", err)
	}
	return requests, nil
}

func (s *GormRequestStore) FindBySchool(schoolID uint) ([]models.PromotionRequest, error) {
	var requests []models.PromotionRequest
	if err := s.db.Where("school_id = ?", schoolID).Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to list promotion requests: %w", err)
	}
	return requests, nil
}

func (s *GormRequestStore) Save(request *models.PromotionRequest) error {
	if err := s.db.Save(request).Error; err != nil {
		return fmt.Errorf("failed to save promotion request: %w", err)
	}
	return nil
}

// Delete removes the request together with its reviews.
func (s *GormRequestStore) Delete(request *models.PromotionRequest) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("promotion_request_id = ?", request.ID).
			Delete(&models.PromotionReview{}).Error; err != nil {
			return fmt.Errorf("failed to delete reviews: %w", err)
		}
		if err := tx.Delete(request).Error; err != nil {
			return fmt.Errorf("failed to delete promotion request: %w", err)
		}
		return nil
	})
}

type GormReviewStore struct {
	db *gorm.DB
}

func NewGormReviewStore(db *gorm.DB) *GormReviewStore {
	return &GormReviewStore{db: db}
}

func (s *GormReviewStore) FindByID(id uint) (*models.PromotionReview, error) {
	var review models.PromotionReview
	if err := s.db.Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: promotion review %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load promotion review: %w", err)
	}
	return &review, nil
}

func (s *GormReviewStore) FindByRequestAndReviewer(requestID, reviewerID uint) (*models.PromotionReview, error) {
	var review models.PromotionReview
	err := s.db.Where("promotion_request_id = ? AND reviewer_id = ?", requestID, reviewerID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up review: %w", err)
	}
	return &review, nil
}

func (s *GormReviewStore) FindByReviewer(reviewerID uint) ([]models.PromotionReview, error) {
	var reviews []models.PromotionReview
	if err := s.db.Where("reviewer_id = ?", reviewerID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormReviewStore) FindByRequest(requestID uint) ([]models.PromotionReview, error) {
	var reviews []models.PromotionReview
	if err := s.db.Where("promotion_request_id = ?", requestID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormReviewStore) FindByDecision(decision models.ReviewDecision) ([]models.PromotionReview, error) {
	var reviews []models.PromotionReview
	if err := s.db.Where("decision = ?", decision).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (s *GormReviewStore) Save(review *models.PromotionReview) error {
	if err := s.db.Save(review).Error; err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

func (s *GormReviewStore) DeleteByID(id uint) error {
	if err := s.db.Where("id = ?", id).Delete(&models.PromotionReview{}).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (s *GormReviewStore) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.PromotionReview{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return count > 0, nil
}

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}
