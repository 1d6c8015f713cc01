package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminAnswer is an administrator's reply to an identified concern
// report, addressed to the user who submitted it. A report may collect
// many answers over time.
type AdminAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ReportID   uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	AnswerText string    `gorm:"type:text;not null" json:"answer_text"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Report     Concern   `gorm:"foreignKey:ReportID" json:"report,omitempty"`
}

func (a *AdminAnswer) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
