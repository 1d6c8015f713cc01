package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Concern categories. Each category has exactly one structured details
// payload type; the pairing is enforced at intake.
const (
	CategoryAcademic      = "academic"
	CategoryPersonal      = "personal"
	CategoryFellowStudent = "fellow_student"
	CategoryHostel        = "hostel"
	CategoryOther         = "other"
)

// ConcernCategories lists the accepted category tags.
var ConcernCategories = []string{
	CategoryAcademic, CategoryPersonal, CategoryFellowStudent,
	CategoryHostel, CategoryOther,
}

// Concern status values. Status is server-owned so that resolution is
// consistent across administrators.
const (
	ConcernStatusOpen     = "open"
	ConcernStatusResolved = "resolved"
)

// AcademicDetails describes an academic concern.
type AcademicDetails struct {
	Department string `json:"department"`
	Course     string `json:"course"`
	IssueType  string `json:"issue_type"`
}

// PersonalDetails describes a personal concern.
type PersonalDetails struct {
	IssueType string `json:"issue_type"`
}

// FellowStudentDetails describes a concern about another student.
type FellowStudentDetails struct {
	Relationship string `json:"relationship"`
	IssueType    string `json:"issue_type"`
}

// HostelDetails describes a hostel concern.
type HostelDetails struct {
	Name      string   `json:"name"`
	Room      string   `json:"room"`
	IssueType string   `json:"issue_type"`
	Photos    []string `json:"photos,omitempty"`
}

// OtherDetails is the free-form fallback payload.
type OtherDetails struct {
	Details string   `json:"details"`
	Photos  []string `json:"photos,omitempty"`
}

// Concern is an identified student concern report. The category-specific
// payload is stored as a single jsonb column whose shape is fixed by the
// Category tag. Sentiment fields are written once at intake.
type Concern struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FullName      string         `gorm:"not null;size:255" json:"fullname"`
	Email         string         `gorm:"not null;size:255" json:"email"`
	Phone         string         `gorm:"not null;size:50" json:"phone"`
	StudentRef    string         `gorm:"not null;size:50" json:"student_ref"`
	Category      string         `gorm:"not null;size:30;index" json:"category"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Details       datatypes.JSON `json:"details,omitempty"`
	Sentiment     string         `gorm:"size:20;not null" json:"sentiment"`
	CompoundScore float64        `gorm:"not null" json:"compound_score"`
	Status        string         `gorm:"size:20;not null;default:'open'" json:"status"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
}

func (c *Concern) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DecodeDetails unmarshals the stored payload into the type matching the
// concern's category. Returns nil when no payload was recorded.
func (c *Concern) DecodeDetails() (interface{}, error) {
	if len(c.Details) == 0 {
		return nil, nil
	}
	var dst interface{}
	switch c.Category {
	case CategoryAcademic:
		dst = &AcademicDetails{}
	case CategoryPersonal:
		dst = &PersonalDetails{}
	case CategoryFellowStudent:
		dst = &FellowStudentDetails{}
	case CategoryHostel:
		dst = &HostelDetails{}
	case CategoryOther:
		dst = &OtherDetails{}
	default:
		return nil, nil
	}
	if err := json.Unmarshal(c.Details, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
