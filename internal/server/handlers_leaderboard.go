package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/interview-coach/internal/leaderboard"
	"github.com/jonathan/interview-coach/internal/server/middleware"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// currentUserID returns the authenticated user's id, or "" for anonymous
// callers on optional-auth routes.
func currentUserID(r *http.Request) string {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		return ""
	}
	return userID.String()
}

// handleLeaderboard serves the leaderboard snapshot. Without a league filter
// it returns the three-league overview; with one it returns a paginated view
// of that league.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	league := leaderboard.ParseLeague(r.URL.Query().Get("league"))

	if league == leaderboard.LeagueAll {
		snapshot, err := s.leaderboard.Snapshot(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to compute leaderboard: "+err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, snapshot)
		return
	}

	page := parseQueryInt(r, "page", 1, 0)
	limit := parseQueryInt(r, "limit", 50, 200)

	view, err := s.leaderboard.LeaguePage(r.Context(), userID, league, page, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to compute leaderboard: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, view)
}
