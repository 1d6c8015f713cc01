package dto

import "github.com/google/uuid"

type CreateAnswerRequest struct {
	UserID     uuid.UUID `json:"user_id"`
	ReportID   uuid.UUID `json:"report_id"`
	AnswerText string    `json:"answer_text"`
}
