package leaderboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankScore_Composite(t *testing.T) {
	s := &UserStats{AverageScorePct: 70, AverageTimeSecs: 30, InterviewsTaken: 2}

	// timeFactor = clamp(0, 100, 90/30*100) = 100
	// 70*0.6 + 2*0.3 + 100*0.1 = 52.6
	assert.InDelta(t, 52.6, RankScore(s), 1e-9)
}

func TestRankScore_TimeFactorAtBaseline(t *testing.T) {
	s := &UserStats{AverageScorePct: 0, AverageTimeSecs: 180, InterviewsTaken: 0}

	// timeFactor = 90/180*100 = 50
	assert.InDelta(t, 5.0, RankScore(s), 1e-9)
}

func TestRankScore_ZeroTimeDoesNotDivideByZero(t *testing.T) {
	s := &UserStats{AverageScorePct: 0, AverageTimeSecs: 0, InterviewsTaken: 0}

	// max(avgTime, 1) guards the division; factor clamps at 100.
	assert.InDelta(t, 10.0, RankScore(s), 1e-9)
}

func activeUser(id string, scorePct float64, lastAt time.Time) *UserStats {
	return &UserStats{
		UserID:            id,
		AverageScorePct:   scorePct,
		AverageTimeSecs:   60,
		InterviewsTaken:   5,
		LastInterviewDate: lastAt,
	}
}

func TestClassify_SoleActiveGenuineUserIsGold(t *testing.T) {
	now := time.Now().UTC()
	u := activeUser("u1", 70, now)

	c := Classify([]*UserStats{u}, now, DefaultActiveWindowDays)

	league, ok := c.LeagueOf("u1")
	require.True(t, ok)
	assert.Equal(t, LeagueGold, league)
	assert.Equal(t, 1, c.GoldCount)
	assert.Equal(t, 1, c.SilverCount)
}

func TestClassify_ThresholdsFloorAtOne(t *testing.T) {
	now := time.Now().UTC()

	c := Classify(nil, now, DefaultActiveWindowDays)

	assert.Equal(t, 1, c.GoldCount)
	assert.Equal(t, 1, c.SilverCount)
}

func TestClassify_BotsFallToBronzeWithoutGenuineUsers(t *testing.T) {
	now := time.Now().UTC()
	bots := []*UserStats{
		{UserID: "bot-a", AverageScorePct: 95, AverageTimeSecs: 180, InterviewsTaken: 13, IsBot: true},
		{UserID: "bot-b", AverageScorePct: 50, AverageTimeSecs: 600, InterviewsTaken: 3, IsBot: true},
	}

	c := Classify(bots, now, DefaultActiveWindowDays)

	assert.Len(t, c.ByLeague[LeagueBronze], 2)
	assert.Empty(t, c.ByLeague[LeagueGold])
	assert.Empty(t, c.ByLeague[LeagueSilver])
}

func TestClassify_PartitionsByPercentile(t *testing.T) {
	now := time.Now().UTC()
	users := make([]*UserStats, 0, 30)
	for i := 0; i < 30; i++ {
		// Descending scores so positions are predictable.
		users = append(users, activeUser(fmt.Sprintf("u%02d", i), float64(99-i), now))
	}

	c := Classify(users, now, DefaultActiveWindowDays)

	// ceil(30*0.10)=3 gold, ceil(30*0.20)=6 silver, rest bronze.
	assert.Len(t, c.ByLeague[LeagueGold], 3)
	assert.Len(t, c.ByLeague[LeagueSilver], 6)
	assert.Len(t, c.ByLeague[LeagueBronze], 21)

	// Display offsets continue across leagues.
	assert.Equal(t, 0, c.RankOffset(LeagueGold))
	assert.Equal(t, 3, c.RankOffset(LeagueSilver))
	assert.Equal(t, 9, c.RankOffset(LeagueBronze))
}

func TestClassify_BotPlacementTracksGenuinePopulation(t *testing.T) {
	now := time.Now().UTC()
	members := make([]*UserStats, 0, 22)
	for i := 0; i < 20; i++ {
		members = append(members, activeUser(fmt.Sprintf("u%02d", i), float64(90-i*2), now))
	}
	topBot := &UserStats{UserID: "bot-top", AverageScorePct: 99, AverageTimeSecs: 60, InterviewsTaken: 5, IsBot: true}
	weakBot := &UserStats{UserID: "bot-weak", AverageScorePct: 10, AverageTimeSecs: 700, InterviewsTaken: 2, IsBot: true}
	members = append(members, topBot, weakBot)

	c := Classify(members, now, DefaultActiveWindowDays)

	topLeague, _ := c.LeagueOf("bot-top")
	weakLeague, _ := c.LeagueOf("bot-weak")
	assert.Equal(t, LeagueGold, topLeague)
	assert.Equal(t, LeagueBronze, weakLeague)
}

func TestClassify_InactiveGenuineUserExcludedFromThresholds(t *testing.T) {
	now := time.Now().UTC()
	active := activeUser("u-active", 70, now)
	stale := activeUser("u-stale", 99, now.AddDate(0, 0, -30))

	c := Classify([]*UserStats{active, stale}, now, DefaultActiveWindowDays)

	// Thresholds see a population of one; the active user is gold.
	require.Len(t, c.ActiveGenuine, 1)
	league, _ := c.LeagueOf("u-active")
	assert.Equal(t, LeagueGold, league)

	// The stale user is still placed: their score outranks the whole active
	// population, which buckets them into gold without widening it.
	staleLeague, ok := c.LeagueOf("u-stale")
	require.True(t, ok)
	assert.Equal(t, LeagueGold, staleLeague)
}

func TestSortByRankScore_DeterministicTieBreak(t *testing.T) {
	a := &UserStats{UserID: "b", RankScore: 50}
	b := &UserStats{UserID: "a", RankScore: 50}
	c := &UserStats{UserID: "c", RankScore: 60}

	members := []*UserStats{a, b, c}
	sortByRankScore(members)

	assert.Equal(t, []string{"c", "a", "b"}, []string{members[0].UserID, members[1].UserID, members[2].UserID})
}
