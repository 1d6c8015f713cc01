package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuscare/backend/internal/apperrors"
	"github.com/campuscare/backend/internal/dto"
	"github.com/campuscare/backend/internal/models"
)

// AdviceService manages the curated advice articles shown on the
// public resources page.
type AdviceService struct {
	db *gorm.DB
}

func NewAdviceService(db *gorm.DB) *AdviceService {
	return &AdviceService{db: db}
}

// List returns all articles, newest first.
func (s *AdviceService) List() ([]models.AdviceArticle, error) {
	articles := make([]models.AdviceArticle, 0)
	if err := s.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, apperrors.Persistence("failed to list advice articles", err)
	}
	return articles, nil
}

func (s *AdviceService) Create(req *dto.CreateAdviceArticleRequest) (*models.AdviceArticle, error) {
	required := map[string]string{
		"title":     req.Title,
		"category":  req.Category,
		"excerpt":   req.Excerpt,
		"author":    req.Author,
		"read_time": req.ReadTime,
		"image":     req.Image,
		"link":      req.Link,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return nil, apperrors.Validation(field + " is required")
		}
	}

	article := &models.AdviceArticle{
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Author:   req.Author,
		ReadTime: req.ReadTime,
		Image:    req.Image,
		Link:     req.Link,
	}
	if err := s.db.Create(article).Error; err != nil {
		return nil, wrapSaveError("failed to create advice article", err)
	}
	return article, nil
}

// Update applies the provided fields to an existing article.
func (s *AdviceService) Update(id uuid.UUID, req *dto.UpdateAdviceArticleRequest) (*models.AdviceArticle, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.ReadTime != nil {
		updates["read_time"] = *req.ReadTime
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if len(updates) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	result := s.db.Model(&models.AdviceArticle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, apperrors.Persistence("failed to update advice article", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NotFound("advice article not found")
	}

	var article models.AdviceArticle
	if err := s.db.First(&article, "id = ?", id).Error; err != nil {
		return nil, apperrors.Persistence("failed to reload advice article", err)
	}
	return &article, nil
}

func (s *AdviceService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.AdviceArticle{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Persistence("failed to delete advice article", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("advice article not found")
	}
	return nil
}
