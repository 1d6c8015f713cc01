package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors a student or administrator account provisioned by the
// identity provider. This service never issues credentials; it only
// reads the role and profile fields attached to authenticated requests.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string         `gorm:"not null;size:255" json:"name"`
	Email      string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	StudentRef string         `gorm:"size:50;index" json:"student_ref"`
	Role       string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
