package services

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"staff-promotion-api/config"
	"staff-promotion-api/models"
)

// NotificationService writes notification rows and optionally pushes them
// out by email. Delivery failures are logged, never propagated: a failed
// email must not fail the workflow event that triggered it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

type NotifyInput struct {
	UserID    uint
	RequestID *uint
	Title     string
	Message   string
	Type      models.NotificationType
}

// Notify stores the notification and attempts email delivery to the target
// user if SMTP is configured.
func (s *NotificationService) Notify(in NotifyInput) (*models.Notification, error) {
	var user models.User
	if err := s.db.Where("id = ?", in.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, in.UserID)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	notification := &models.Notification{
		UserID:    user.ID,
		RequestID: in.RequestID,
		Title:     in.Title,
		Message:   in.Message,
		Type:      in.Type,
	}
	if notification.Type == "" {
		notification.Type = models.NotificationInfo
	}

	if err := s.db.Create(notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	body := fmt.Sprintf("<p>%s</p>", notification.Message)
	if err := config.SendMail([]string{user.Email}, notification.Title, body); err != nil {
		log.Printf("Warning: notification email to %s not sent: %v", user.Email, err)
	} else {
		s.db.Model(notification).Update("is_email_sent", true)
		notification.IsEmailSent = true
	}

	return notification, nil
}

func (s *NotificationService) ListForUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	var notifications []models.Notification
	query := s.db.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if err := query.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkAsRead(id, userID uint) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: notification %d", ErrNotFound, id)
	}
	return nil
}

func (s *NotificationService) Delete(id, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: notification %d", ErrNotFound, id)
	}
	return nil
}
