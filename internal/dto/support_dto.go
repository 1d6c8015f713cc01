package dto

import "github.com/campuscare/backend/internal/models"

type CreateAnonymousMessageRequest struct {
	Message string `json:"message"`
}

// CreateConcernRequest carries an identified concern submission. The
// submitter is always the authenticated user; profile fields (name,
// email, student ref) are read from the user record, never from the
// body. Exactly one details payload may be set, and it must match the
// category tag.
type CreateConcernRequest struct {
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Description string `json:"description"`

	Academic      *models.AcademicDetails      `json:"academic,omitempty"`
	Personal      *models.PersonalDetails      `json:"personal,omitempty"`
	FellowStudent *models.FellowStudentDetails `json:"fellow_student,omitempty"`
	Hostel        *models.HostelDetails        `json:"hostel,omitempty"`
	Other         *models.OtherDetails         `json:"other,omitempty"`
}

type UpdateConcernStatusRequest struct {
	Status string `json:"status"`
}
