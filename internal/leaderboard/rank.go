package leaderboard

import (
	"math"
	"sort"
	"time"
)

// Rank score weights. Average score dominates, interview volume rewards
// consistency, and response speed breaks the remainder.
const (
	scoreWeight  = 0.6
	volumeWeight = 0.3
	speedWeight  = 0.1

	// referenceTimeSecs is the baseline answer time; averaging faster than
	// this pushes the time factor above 100 before clamping.
	referenceTimeSecs = 90

	// Percentile cutoffs over the active genuine population.
	goldShare   = 0.10
	silverShare = 0.20

	// DefaultActiveWindowDays is how recently a genuine user must have
	// interviewed to count toward the percentile thresholds.
	DefaultActiveWindowDays = 14
)

// RankScore computes the composite metric used to order the board.
func RankScore(s *UserStats) float64 {
	timeFactor := clamp(0, 100, referenceTimeSecs/math.Max(s.AverageTimeSecs, 1)*100)
	return s.AverageScorePct*scoreWeight + float64(s.InterviewsTaken)*volumeWeight + timeFactor*speedWeight
}

func clamp(min, max, v float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Classification is the outcome of one league assignment pass.
type Classification struct {
	// ByLeague holds every member (genuine and bot) per league, sorted
	// descending by rank score.
	ByLeague map[League][]*UserStats
	// ActiveGenuine is the threshold population, sorted descending.
	ActiveGenuine []*UserStats
	// GoldCount and SilverCount are the league size cutoffs derived from the
	// active genuine population.
	GoldCount   int
	SilverCount int
	leagueOf    map[string]League
}

// Classify assigns every member to a league. Percentile thresholds are
// derived from active genuine users only; bots and inactive genuine users are
// then bucketed by the position their rank score would earn against that same
// population, so filler placement tracks real difficulty without influencing
// it.
func Classify(stats []*UserStats, now time.Time, activeWindowDays int) *Classification {
	for _, s := range stats {
		s.RankScore = RankScore(s)
	}

	cutoff := now.Add(-time.Duration(activeWindowDays) * 24 * time.Hour)
	var activeGenuine []*UserStats
	for _, s := range stats {
		if !s.IsBot && !s.LastInterviewDate.Before(cutoff) {
			activeGenuine = append(activeGenuine, s)
		}
	}
	sortByRankScore(activeGenuine)

	n := len(activeGenuine)
	goldCount := atLeastOne(math.Ceil(float64(n) * goldShare))
	silverCount := atLeastOne(math.Ceil(float64(n) * silverShare))

	c := &Classification{
		ByLeague:      make(map[League][]*UserStats, 3),
		ActiveGenuine: activeGenuine,
		GoldCount:     goldCount,
		SilverCount:   silverCount,
		leagueOf:      make(map[string]League, len(stats)),
	}

	// Active genuine users take leagues strictly by sorted position.
	position := make(map[string]int, n)
	for i, s := range activeGenuine {
		position[s.UserID] = i + 1
	}

	for _, s := range stats {
		var league League
		if pos, active := position[s.UserID]; active && !s.IsBot {
			league = leagueForPosition(pos, goldCount, silverCount)
		} else if n == 0 {
			// Percentile against an empty population is defined as 0.
			league = LeagueBronze
		} else {
			// Bots and inactive genuine users: find the position this score
			// would earn against the active genuine population and bucket it
			// the same way.
			outranked := countOutranked(activeGenuine, s.RankScore)
			league = leagueForPosition(n-outranked+1, goldCount, silverCount)
		}
		c.leagueOf[s.UserID] = league
		c.ByLeague[league] = append(c.ByLeague[league], s)
	}

	for _, league := range []League{LeagueGold, LeagueSilver, LeagueBronze} {
		sortByRankScore(c.ByLeague[league])
	}
	return c
}

// LeagueOf reports the league a member was placed into.
func (c *Classification) LeagueOf(userID string) (League, bool) {
	league, ok := c.leagueOf[userID]
	return league, ok
}

// RankOffset is the display-rank offset for a league: gold ranks start at 1,
// silver continues after gold, bronze after silver.
func (c *Classification) RankOffset(league League) int {
	switch league {
	case LeagueSilver:
		return len(c.ByLeague[LeagueGold])
	case LeagueBronze:
		return len(c.ByLeague[LeagueGold]) + len(c.ByLeague[LeagueSilver])
	default:
		return 0
	}
}

// boundary returns the active genuine user sitting at the league cutoff
// (1-based position), or nil when the population is too small to have one.
func (c *Classification) boundary(position int) *UserStats {
	if position < 1 || position > len(c.ActiveGenuine) {
		return nil
	}
	return c.ActiveGenuine[position-1]
}

// GoldBoundary is the last user inside gold; SilverBoundary the last inside silver.
func (c *Classification) GoldBoundary() *UserStats {
	return c.boundary(c.GoldCount)
}

func (c *Classification) SilverBoundary() *UserStats {
	return c.boundary(c.GoldCount + c.SilverCount)
}

func leagueForPosition(pos, goldCount, silverCount int) League {
	switch {
	case pos <= goldCount:
		return LeagueGold
	case pos <= goldCount+silverCount:
		return LeagueSilver
	default:
		return LeagueBronze
	}
}

// countOutranked reports how many of the sorted population a score would beat.
func countOutranked(sortedDesc []*UserStats, rankScore float64) int {
	// First index whose score is strictly below rankScore; everything from
	// there on is outranked.
	idx := sort.Search(len(sortedDesc), func(i int) bool {
		return sortedDesc[i].RankScore < rankScore
	})
	return len(sortedDesc) - idx
}

// sortByRankScore orders members descending by rank score with ascending user
// id as the tie-break, so equal scores rank identically across recomputations.
func sortByRankScore(members []*UserStats) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].RankScore != members[j].RankScore {
			return members[i].RankScore > members[j].RankScore
		}
		return members[i].UserID < members[j].UserID
	})
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
