package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/models"
)

// AnswerService manages administrator replies to identified concern
// reports.
type AnswerService struct {
	db *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{db: db}
}

// Create records an answer addressed to the report's submitter. The
// referenced report must exist; the owning user is taken from it so an
// answer can never be misaddressed.
func (s *AnswerService) Create(req *dto.CreateAnswerRequest) (*models.AdminAnswer, error) {
	if req.ReportID == uuid.Nil {
		return nil, apperrors.Validation("report_id is required")
	}
	if strings.TrimSpace(req.AnswerText) == "" {
		return nil, apperrors.Validation("answer_text is required")
	}

	var report models.Concern
	if err := s.db.First(&report, "id = ?", req.ReportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("concern report not found")
		}
		return nil, apperrors.Persistence("failed to load concern report", err)
	}

	answer := &models.AdminAnswer{
		UserID:     report.UserID,
		ReportID:   report.ID,
		AnswerText: req.AnswerText,
	}
	if err := s.db.Create(answer).Error; err != nil {
		return nil, wrapSaveError("failed to create answer", err)
	}
	return answer, nil
}

// ListForUser returns the answers addressed to a user, newest first,
// with the originating report attached.
func (s *AnswerService) ListForUser(userID uuid.UUID) ([]models.AdminAnswer, error) {
	answers := make([]models.AdminAnswer, 0)
	err := s.db.Preload("Report").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&answers).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list answers", err)
	}
	return answers, nil
}

// ListAll returns every answer, newest first, for the admin dashboard.
func (s *AnswerService) ListAll() ([]models.AdminAnswer, error) {
	answers := make([]models.AdminAnswer, 0)
	err := s.db.Preload("Report").Order("created_at DESC").Find(&answers).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list answers", err)
	}
	return answers, nil
}
