package server

import (
	"net/http"

	"github.com/jonathan/interview-coach/internal/server/middleware"
)

// handleGetCurrentUser returns the authenticated user's profile together with
// their leaderboard standing.
func (s *Server) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.profiles.GetProfileByID(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		notFound := &ErrUserNotFound{UserID: userID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	snapshot, err := s.leaderboard.Snapshot(r.Context(), userID.String())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute leaderboard: "+err.Error())
		return
	}

	// standing is nil until the user records their first attempt.
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile":  profile,
		"standing": snapshot.CurrentUser,
	})
}
