package services

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/models"
	"github.com/campuscare/backend/internal/sentiment"
)

// ConcernService handles identified concern intake, retrieval, and
// administrative resolution.
type ConcernService struct {
	db            *gorm.DB
	analyzer      *sentiment.Analyzer
	policy        *UrgencyPolicy
	notifications *NotificationService
}

func NewConcernService(db *gorm.DB, analyzer *sentiment.Analyzer, policy *UrgencyPolicy, notifications *NotificationService) *ConcernService {
	return &ConcernService{
		db:            db,
		analyzer:      analyzer,
		policy:        policy,
		notifications: notifications,
	}
}

// Create runs the intake sequence for an identified concern. The
// submitter is the authenticated user; name, email, and student ref are
// copied from the user record, never taken from the request body.
// Validation runs before classification, classification before the
// submission write, and the policy before the notification write. The
// two writes are not one transaction.
func (s *ConcernService) Create(userID uuid.UUID, req *dto.CreateConcernRequest) (*models.Concern, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Persistence("failed to load user", err)
	}

	if err := validateConcernRequest(req); err != nil {
		return nil, err
	}

	details, err := encodeDetails(req)
	if err != nil {
		return nil, err
	}

	annotation, err := s.analyzer.Analyze(req.Description)
	if err != nil {
		return nil, err
	}

	concern := &models.Concern{
		UserID:        user.ID,
		FullName:      user.Name,
		Email:         user.Email,
		Phone:         req.Phone,
		StudentRef:    user.StudentRef,
		Category:      req.Category,
		Description:   req.Description,
		Details:       details,
		Sentiment:     annotation.Label,
		CompoundScore: annotation.CompoundScore,
		Status:        models.ConcernStatusOpen,
	}
	if err := s.db.Create(concern).Error; err != nil {
		return nil, wrapSaveError("failed to create concern report", err)
	}

	if n := s.policy.Evaluate(models.SubmissionIdentified, annotation.CompoundScore, concern.ID, user.Name); n != nil {
		if err := s.notifications.Create(n); err != nil {
			slog.Error("urgent notification failed after concern was persisted",
				"report_id", concern.ID, "error", err)
			return nil, err
		}
	}

	return concern, nil
}

// List returns all concern reports, newest first.
func (s *ConcernService) List() ([]models.Concern, error) {
	concerns := make([]models.Concern, 0)
	if err := s.db.Order("created_at DESC").Find(&concerns).Error; err != nil {
		return nil, apperrors.Persistence("failed to list concern reports", err)
	}
	return concerns, nil
}

// ListByUser returns the reports a given user submitted, newest first.
func (s *ConcernService) ListByUser(userID uuid.UUID) ([]models.Concern, error) {
	concerns := make([]models.Concern, 0)
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&concerns).Error
	if err != nil {
		return nil, apperrors.Persistence("failed to list concern reports", err)
	}
	return concerns, nil
}

func (s *ConcernService) GetByID(id uuid.UUID) (*models.Concern, error) {
	var concern models.Concern
	if err := s.db.First(&concern, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("concern report not found")
		}
		return nil, apperrors.Persistence("failed to load concern report", err)
	}
	return &concern, nil
}

// UpdateStatus moves a report between open and resolved. Status lives
// on the server so every administrator sees the same resolution state.
func (s *ConcernService) UpdateStatus(id uuid.UUID, status string) error {
	if status != models.ConcernStatusOpen && status != models.ConcernStatusResolved {
		return apperrors.Validation("status must be open or resolved")
	}
	result := s.db.Model(&models.Concern{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return apperrors.Persistence("failed to update concern status", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("concern report not found")
	}
	return nil
}

// Delete removes a report. Urgent notifications referencing it are kept
// for the administrator to resolve separately.
func (s *ConcernService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Concern{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Persistence("failed to delete concern report", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("concern report not found")
	}
	return nil
}

func validateConcernRequest(req *dto.CreateConcernRequest) error {
	if strings.TrimSpace(req.Phone) == "" {
		return apperrors.Validation("phone is required")
	}
	if !validCategory(req.Category) {
		return apperrors.Validation("category must be one of: " + strings.Join(models.ConcernCategories, ", "))
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.Validation("description is required")
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range models.ConcernCategories {
		if c == category {
			return true
		}
	}
	return false
}

// encodeDetails enforces the tagged union: at most one details payload
// may be present, and it must match the category.
func encodeDetails(req *dto.CreateConcernRequest) (datatypes.JSON, error) {
	var payload interface{}
	count := 0
	if req.Academic != nil {
		count++
		payload = req.Academic
		if req.Category != models.CategoryAcademic {
			return nil, apperrors.Validation("academic details require category academic")
		}
	}
	if req.Personal != nil {
		count++
		payload = req.Personal
		if req.Category != models.CategoryPersonal {
			return nil, apperrors.Validation("personal details require category personal")
		}
	}
	if req.FellowStudent != nil {
		count++
		payload = req.FellowStudent
		if req.Category != models.CategoryFellowStudent {
			return nil, apperrors.Validation("fellow_student details require category fellow_student")
		}
	}
	if req.Hostel != nil {
		count++
		payload = req.Hostel
		if req.Category != models.CategoryHostel {
			return nil, apperrors.Validation("hostel details require category hostel")
		}
	}
	if req.Other != nil {
		count++
		payload = req.Other
		if req.Category != models.CategoryOther {
			return nil, apperrors.Validation("other details require category other")
		}
	}
	if count > 1 {
		return nil, apperrors.Validation("only one details payload may be set")
	}
	if payload == nil {
		return nil, nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Validation("invalid details payload")
	}
	return datatypes.JSON(b), nil
}
