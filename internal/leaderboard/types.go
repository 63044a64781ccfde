// Package leaderboard computes the competitive leaderboard snapshot: per-user
// statistics, activity streaks, the synthetic filler population, league
// classification, badges, and the paginated views served by the API.
package leaderboard

import "time"

// League is a competitive tier a user is placed into based on relative performance.
type League string

// League values. LeagueAll is only valid as a request filter, never as a placement.
const (
	LeagueGold   League = "gold"
	LeagueSilver League = "silver"
	LeagueBronze League = "bronze"
	LeagueAll    League = "all"
)

// ParseLeague maps a query-parameter value to a League.
// Unknown or empty values fall back to LeagueAll.
func ParseLeague(s string) League {
	switch League(s) {
	case LeagueGold, LeagueSilver, LeagueBronze:
		return League(s)
	default:
		return LeagueAll
	}
}

// Attempt is one completed interview attempt as read from the attempt store.
// Attempts are never mutated by this package.
type Attempt struct {
	UserID         string
	Score          int
	TotalQuestions int
	TimeSeconds    *int // nil when the client did not report elapsed time
	CreatedAt      time.Time
}

// UserStats is the per-user reduction of all attempts, recomputed on every
// snapshot and discarded afterwards. Bots carry the same shape with no backing
// attempts.
type UserStats struct {
	UserID            string
	UsernameMasked    string
	AverageScorePct   float64
	AverageTimeSecs   float64
	InterviewsTaken   int
	StreakDays        int
	RankScore         float64
	LastInterviewDate time.Time
	IsBot             bool
}

// LeaderRow is the presentation projection of one leaderboard member.
// Rank is the globally-offset display rank (gold 1..N, silver N+1.., bronze after).
type LeaderRow struct {
	Rank            int      `json:"rank"`
	UsernameMasked  string   `json:"username_masked"`
	AverageScore    float64  `json:"average_score"`
	AverageTimeSecs float64  `json:"average_time_secs"`
	InterviewsTaken int      `json:"interviews_taken"`
	Badges          []string `json:"badges"`
	IsBot           bool     `json:"is_bot"`
}

// NextLeagueHint tells the requesting user what they are missing to reach the
// next league up.
type NextLeagueHint struct {
	Type  string `json:"type"` // "score" or "interviews"
	Value int    `json:"value"`
}

// CurrentUserView is the requesting user's personalized position.
type CurrentUserView struct {
	UserID           string         `json:"user_id"`
	League           League         `json:"league"`
	Rank             int            `json:"rank"`
	WaitlistPosition int            `json:"waitlist_position"`
	AverageScore     float64        `json:"average_score"`
	AverageTimeSecs  float64        `json:"average_time_secs"`
	InterviewsTaken  int            `json:"interviews_taken"`
	StreakDays       int            `json:"streak_days"`
	Percentile       float64        `json:"percentile"`
	NextLeagueHint   NextLeagueHint `json:"next_league_hint"`
}

// LeagueBoard is one league's slice of the default snapshot view.
// The wire field is named top10 for historical reasons; it holds the top 15
// rows plus the requesting user's row when they fall outside.
type LeagueBoard struct {
	Total int         `json:"total"`
	Top   []LeaderRow `json:"top10"`
}

// Leagues groups the three boards of the default view.
type Leagues struct {
	Gold   LeagueBoard `json:"gold"`
	Silver LeagueBoard `json:"silver"`
	Bronze LeagueBoard `json:"bronze"`
}

// Snapshot is the default (league=all) response payload.
// CurrentUser is nil for anonymous callers.
type Snapshot struct {
	CurrentUser *CurrentUserView `json:"currentUser"`
	Leagues     Leagues          `json:"leagues"`
}

// Pagination describes one page of a single-league view.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"hasMore"`
}

// LeagueCounts reports the full membership size of each league.
type LeagueCounts struct {
	Gold   int `json:"gold"`
	Silver int `json:"silver"`
	Bronze int `json:"bronze"`
}

// LeaguePage is the paginated (league != all) response payload.
type LeaguePage struct {
	CurrentUser  *CurrentUserView `json:"currentUser"`
	League       League           `json:"league"`
	Users        []LeaderRow      `json:"users"`
	Pagination   Pagination       `json:"pagination"`
	LeagueCounts LeagueCounts     `json:"leagueCounts"`
}

// MaskUsername derives the public display label for a user id: a fixed prefix
// plus the last four characters of the id. Real identities never appear on the
// board.
func MaskUsername(userID string) string {
	tail := userID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return "User-" + tail
}
