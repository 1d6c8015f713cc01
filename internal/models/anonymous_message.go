package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymousMessage is a free-text submission with no submitter identity.
// The sentiment annotation is computed once at creation and never
// recomputed afterward.
type AnonymousMessage struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	Sentiment     string    `gorm:"size:20;not null" json:"sentiment"`
	CompoundScore float64   `gorm:"not null" json:"compound_score"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (m *AnonymousMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
