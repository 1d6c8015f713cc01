package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/models"
)

const defaultUrgentListLimit = 10

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService persists urgent notifications and exposes the
// administrative retrieval and resolution operations.
type NotificationService struct {
	db           *gorm.DB
	defaultLimit int
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db, defaultLimit: defaultUrgentListLimit}
}

// NewNotificationServiceWithLimit overrides the default listing cap.
func NewNotificationServiceWithLimit(db *gorm.DB, limit int) *NotificationService {
	if limit <= 0 {
		limit = defaultUrgentListLimit
	}
	return &NotificationService{db: db, defaultLimit: limit}
}

// Create persists a notification raised by the urgency policy. The ID
// and creation timestamp are assigned by the store when unset.
func (s *NotificationService) Create(n *models.UrgentNotification) error {
	if err := s.db.Create(n).Error; err != nil {
		return apperrors.Persistence("failed to create urgent notification", err)
	}
	return nil
}

// ListRecent returns notifications newest first, capped at limit. A
// non-positive limit falls back to the configured default. No
// notifications is an empty slice, not an error.
func (s *NotificationService) ListRecent(limit int) ([]models.UrgentNotification, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	notifications := make([]models.UrgentNotification, 0, limit)
	err := s.db.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list urgent notifications", err)
	}
	return notifications, nil
}

// Resolve hard-deletes a notification. Resolving an unknown id is a
// not-found error rather than an idempotent no-op, so an administrator
// racing another admin sees that the alert was already handled. No
// tombstone is kept.
func (s *NotificationService) Resolve(id uuid.UUID) error {
	result := s.db.Delete(&models.UrgentNotification{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Persistence("failed to resolve urgent notification", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound(ErrNotificationNotFound.Error())
	}
	return nil
}
