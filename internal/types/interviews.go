// Package types provides type definitions for structured data used throughout the interview-coach system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RecordAttemptRequest represents the request to record a finished interview session.
type RecordAttemptRequest struct {
	Score          int  `json:"score" validate:"min=0"`
	TotalQuestions int  `json:"total_questions" validate:"required,min=1"`
	TimeSeconds    *int `json:"time_seconds,omitempty" validate:"omitempty,min=0"`
}

// InterviewAttempt represents a recorded interview session for API responses
// (avoids import cycle with db package).
type InterviewAttempt struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TimeSeconds    *int      `json:"time_seconds,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AttemptListResponse represents a paginated slice of a user's interview history.
type AttemptListResponse struct {
	Attempts []InterviewAttempt `json:"attempts"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	Limit    int                `json:"limit"`
}

// Validate validates the RecordAttemptRequest using the validator.
func (r *RecordAttemptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
