package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdviceArticle is a curated self-help resource shown on the public
// advice page and managed by administrators.
type AdviceArticle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Category  string    `gorm:"not null;size:50;index" json:"category"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Author    string    `gorm:"not null;size:255" json:"author"`
	ReadTime  string    `gorm:"not null;size:30" json:"read_time"`
	Image     string    `gorm:"not null;size:500" json:"image"`
	Link      string    `gorm:"not null;size:500" json:"link"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *AdviceArticle) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
