package models

import (
	"time"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "INFO"
	NotificationSuccess NotificationType = "SUCCESS"
	NotificationWarning NotificationType = "WARNING"
	NotificationError   NotificationType = "ERROR"
)

type Notification struct {
	ID          uint             `gorm:"primaryKey;column:id" json:"id"`
	UserID      uint             `gorm:"column:user_id" json:"user_id"`
	RequestID   *uint            `gorm:"column:promotion_request_id" json:"promotion_request_id,omitempty"`
	Title       string           `gorm:"column:title" json:"title"`
	Message     string           `gorm:"column:message;type:text" json:"message"`
	Type        NotificationType `gorm:"column:type" json:"type"`
	IsRead      bool             `gorm:"column:is_read;default:false" json:"is_read"`
	IsEmailSent bool             `gorm:"column:is_email_sent;default:false" json:"is_email_sent"`
	CreatedAt   time.Time        `gorm:"column:created_at" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
