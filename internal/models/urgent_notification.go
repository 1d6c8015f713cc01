package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission type tags carried on urgent notifications.
const (
	SubmissionAnonymous  = "anonymous"
	SubmissionIdentified = "identified"
)

// UrgentNotification is an alert raised when the urgency policy fires on
// a freshly classified submission. ReportID is a weak reference to the
// originating submission: deleting the submission does not cascade here.
// Notifications are created once, never updated, and removed only by an
// administrator resolving them.
type UrgentNotification struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Message        string    `gorm:"not null;size:500" json:"message"`
	Type           string    `gorm:"not null;size:20;index" json:"type"`
	ReportID       uuid.UUID `gorm:"type:uuid;not null;index" json:"report_id"`
	SentimentScore float64   `gorm:"not null" json:"sentiment_score"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (n *UrgentNotification) BeforeCreate(*gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
