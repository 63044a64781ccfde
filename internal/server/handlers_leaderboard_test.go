package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/leaderboard"
)

// seedBoard registers n users, each with one recent attempt so everyone is
// active. Scores descend with i so ordering is predictable.
func seedBoard(s *testServer, n int) []uuid.UUID {
	now := time.Now().UTC()
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		id := uuid.New()
		ids[i] = id
		s.mock.addProfile(id, fmt.Sprintf("User %d", i))
		secs := 120 + 10*i
		s.mock.addAttempt(id, 10-i%10, 10, &secs, now.Add(-time.Duration(i+1)*time.Hour))
	}
	return ids
}

func TestHandleLeaderboard_AnonymousSnapshot(t *testing.T) {
	s := newTestServer()
	seedBoard(s, 10)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var snap leaderboard.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))

	assert.Nil(t, snap.CurrentUser, "anonymous request has no personalized block")
	total := snap.Leagues.Gold.Total + snap.Leagues.Silver.Total + snap.Leagues.Bronze.Total
	assert.Equal(t, 10, total, "every seeded user is placed in exactly one league")
	assert.NotEmpty(t, snap.Leagues.Gold.Top, "gold league is never empty with active users")
}

func TestHandleLeaderboard_AuthenticatedSnapshot(t *testing.T) {
	s := newTestServer()
	ids := seedBoard(s, 10)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	req.Header.Set("Authorization", s.authHeader(t, ids[0]))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var snap leaderboard.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))

	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, ids[0].String(), snap.CurrentUser.UserID)
	assert.Equal(t, 1, snap.CurrentUser.Rank, "highest scorer holds rank 1")
	assert.Equal(t, leaderboard.LeagueGold, snap.CurrentUser.League)
}

func TestHandleLeaderboard_InvalidTokenIsAnonymous(t *testing.T) {
	s := newTestServer()
	seedBoard(s, 5)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var snap leaderboard.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	assert.Nil(t, snap.CurrentUser)
}

func TestHandleLeaderboard_LeaguePage(t *testing.T) {
	s := newTestServer()
	seedBoard(s, 30)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?league=bronze&page=1&limit=10", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page leaderboard.LeaguePage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Equal(t, leaderboard.LeagueBronze, page.League)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.Limit)
	assert.Equal(t, page.LeagueCounts.Bronze, page.Pagination.Total)
	assert.LessOrEqual(t, len(page.Users), 10)

	// Bronze display ranks continue after gold and silver.
	if len(page.Users) > 0 {
		wantFirst := page.LeagueCounts.Gold + page.LeagueCounts.Silver + 1
		assert.Equal(t, wantFirst, page.Users[0].Rank)
	}
}

func TestHandleLeaderboard_UnknownLeagueFallsBackToAll(t *testing.T) {
	s := newTestServer()
	seedBoard(s, 5)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?league=platinum", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The all-league snapshot has a "leagues" object; a league page has "users".
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "leagues")
	assert.NotContains(t, body, "users")
}

func TestHandleLeaderboard_UpstreamFailure(t *testing.T) {
	s := newTestServer()
	s.mock.failWith = fmt.Errorf("connection reset")

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Failed to compute leaderboard")
}

func TestHandleGetCurrentUser_Success(t *testing.T) {
	s := newTestServer()
	ids := seedBoard(s, 5)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", s.authHeader(t, ids[0]))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profile struct {
			ID          uuid.UUID `json:"id"`
			DisplayName string    `json:"display_name"`
		} `json:"profile"`
		Standing *leaderboard.CurrentUserView `json:"standing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ids[0], resp.Profile.ID)
	require.NotNil(t, resp.Standing)
	assert.Equal(t, ids[0].String(), resp.Standing.UserID)
}

func TestHandleGetCurrentUser_NoAttemptsYet(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()
	s.mock.addProfile(userID, "Fresh")

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", s.authHeader(t, userID))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Standing *leaderboard.CurrentUserView `json:"standing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Standing, "standing appears only after the first attempt")
}

func TestHandleGetCurrentUser_UnknownProfile(t *testing.T) {
	s := newTestServer()
	userID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", s.authHeader(t, userID))
	w := httptest.NewRecorder()

	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "user not found")
}
