package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/server/middleware"
	"github.com/jonathan/interview-coach/internal/types"
)

// handleRecordAttempt records a finished interview session for the
// authenticated user.
func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.RecordAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	// A score above the question count is malformed at the source; reject it
	// rather than letting the aggregation clamp it later.
	if req.Score > req.TotalQuestions {
		s.errorResponse(w, http.StatusBadRequest, "Score cannot exceed total questions")
		return
	}

	id, err := s.attempts.InsertAttempt(r.Context(), userID, req.Score, req.TotalQuestions, req.TimeSeconds)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":     id,
		"status": "recorded",
	})
}

// handleListAttempts returns the authenticated user's interview history,
// newest first.
func (s *Server) handleListAttempts(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page := parseQueryInt(r, "page", 1, 0)
	if page < 1 {
		page = 1
	}
	limit := parseQueryInt(r, "limit", 20, 100)
	offset := (page - 1) * limit

	rows, total, err := s.attempts.ListAttemptsByUser(r.Context(), userID, limit, offset)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	attempts := make([]types.InterviewAttempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, attemptResponse(row))
	}

	s.jsonResponse(w, http.StatusOK, types.AttemptListResponse{
		Attempts: attempts,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

// attemptResponse converts a database row to its API representation.
func attemptResponse(row db.InterviewAttempt) types.InterviewAttempt {
	return types.InterviewAttempt{
		ID:             row.ID,
		UserID:         row.UserID,
		Score:          row.Score,
		TotalQuestions: row.TotalQuestions,
		TimeSeconds:    row.TimeSeconds,
		CreatedAt:      row.CreatedAt,
	}
}
