package db

import (
	"time"

	"github.com/google/uuid"
)

// InterviewAttempt is one completed interview session. Rows are written once
// when an attempt finishes and never mutated; the leaderboard reads them in
// bulk.
type InterviewAttempt struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	TimeSeconds    *int      `json:"time_seconds,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Profile is a registered user. An attempt whose user id has no profile row is
// treated as synthetic by the leaderboard.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}
