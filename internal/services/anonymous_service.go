package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/models"
	"github.com/campuscare/backend/internal/sentiment"
)

// AnonymousService handles anonymous message intake and retrieval.
type AnonymousService struct {
	db            *gorm.DB
	analyzer      *sentiment.Analyzer
	policy        *UrgencyPolicy
	notifications *NotificationService
}

func NewAnonymousService(db *gorm.DB, analyzer *sentiment.Analyzer, policy *UrgencyPolicy, notifications *NotificationService) *AnonymousService {
	return &AnonymousService{
		db:            db,
		analyzer:      analyzer,
		policy:        policy,
		notifications: notifications,
	}
}

// Create runs the intake sequence for an anonymous message: validate,
// classify, persist the message with its annotation, evaluate the
// urgency policy, and persist the notification when it fires. The two
// writes are not one transaction; a crash between them leaves a
// persisted message without its notification.
func (s *AnonymousService) Create(message string) (*models.AnonymousMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.Validation("message is required")
	}

	annotation, err := s.analyzer.Analyze(message)
	if err != nil {
		return nil, err
	}

	msg := &models.AnonymousMessage{
		Message:       message,
		Sentiment:     annotation.Label,
		CompoundScore: annotation.CompoundScore,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, wrapSaveError("failed to create anonymous message", err)
	}

	if n := s.policy.Evaluate(models.SubmissionAnonymous, annotation.CompoundScore, msg.ID, ""); n != nil {
		if err := s.notifications.Create(n); err != nil {
			slog.Error("urgent notification failed after message was persisted",
				"report_id", msg.ID, "error", err)
			return nil, err
		}
	}

	return msg, nil
}

// List returns all anonymous messages, newest first.
func (s *AnonymousService) List() ([]models.AnonymousMessage, error) {
	messages := make([]models.AnonymousMessage, 0)
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, apperrors.Persistence("failed to list anonymous messages", err)
	}
	return messages, nil
}

func (s *AnonymousService) GetByID(id uuid.UUID) (*models.AnonymousMessage, error) {
	var msg models.AnonymousMessage
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("message not found")
		}
		return nil, apperrors.Persistence("failed to load anonymous message", err)
	}
	return &msg, nil
}

// Delete removes a message. Any urgent notification raised from it is
// left in place; the notification holds only a weak reference.
func (s *AnonymousService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.AnonymousMessage{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Persistence("failed to delete anonymous message", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("message not found")
	}
	return nil
}
