package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

func (s *NotificationService) ListForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

// MarkRead marks one of the caller's notifications as read. Other users'
// notifications are invisible here.
func (s *NotificationService) MarkRead(userID, notificationID uint) (*models.Notification, error) {
	var notification models.Notification
	err := s.DB.Where("id = ? AND user_id = ?", notificationID, userID).First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if notification.IsRead {
		return &notification, nil
	}

	now := time.Now()
	err = s.DB.Model(&notification).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": &now,
	}).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}
