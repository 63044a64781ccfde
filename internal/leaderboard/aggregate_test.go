package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestAggregate_ArithmeticMean(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		{UserID: "u1", Score: 8, TotalQuestions: 10, TimeSeconds: intPtr(25), CreatedAt: now},
		{UserID: "u1", Score: 6, TotalQuestions: 10, TimeSeconds: intPtr(35), CreatedAt: now.Add(-24 * time.Hour)},
	}

	stats := Aggregate(attempts, map[string]bool{"u1": true})

	require.Len(t, stats, 1)
	u := stats["u1"]
	require.NotNil(t, u)
	assert.InDelta(t, 70.0, u.AverageScorePct, 1e-9)
	assert.InDelta(t, 30.0, u.AverageTimeSecs, 1e-9)
	assert.Equal(t, 2, u.InterviewsTaken)
	assert.Equal(t, now, u.LastInterviewDate)
	assert.False(t, u.IsBot)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	now := time.Now().UTC()
	attempts := []Attempt{
		{UserID: "u1", Score: 3, TotalQuestions: 7, TimeSeconds: intPtr(41), CreatedAt: now},
		{UserID: "u1", Score: 9, TotalQuestions: 11, TimeSeconds: intPtr(17), CreatedAt: now},
		{UserID: "u1", Score: 1, TotalQuestions: 3, TimeSeconds: intPtr(88), CreatedAt: now},
	}
	reversed := []Attempt{attempts[2], attempts[1], attempts[0]}

	forward := Aggregate(attempts, nil)["u1"]
	backward := Aggregate(reversed, nil)["u1"]

	assert.InDelta(t, forward.AverageScorePct, backward.AverageScorePct, 1e-9)
	assert.InDelta(t, forward.AverageTimeSecs, backward.AverageTimeSecs, 1e-9)
}

func TestAggregate_MalformedAttemptCountsAsZero(t *testing.T) {
	now := time.Now().UTC()
	attempts := []Attempt{
		{UserID: "u1", Score: 10, TotalQuestions: 10, TimeSeconds: intPtr(30), CreatedAt: now},
		{UserID: "u1", Score: 5, TotalQuestions: 0, TimeSeconds: intPtr(30), CreatedAt: now},
	}

	stats := Aggregate(attempts, map[string]bool{"u1": true})

	// 100% and 0% average to 50%; the malformed attempt still counts toward volume.
	assert.InDelta(t, 50.0, stats["u1"].AverageScorePct, 1e-9)
	assert.Equal(t, 2, stats["u1"].InterviewsTaken)
}

func TestAggregate_MissingTimeDefaultsTo60(t *testing.T) {
	attempts := []Attempt{
		{UserID: "u1", Score: 5, TotalQuestions: 10, CreatedAt: time.Now()},
	}

	stats := Aggregate(attempts, nil)

	assert.InDelta(t, 60.0, stats["u1"].AverageTimeSecs, 1e-9)
}

func TestAggregate_UnknownIdentityIsBot(t *testing.T) {
	attempts := []Attempt{
		{UserID: "ghost", Score: 5, TotalQuestions: 10, CreatedAt: time.Now()},
	}

	stats := Aggregate(attempts, map[string]bool{"someone-else": true})

	assert.True(t, stats["ghost"].IsBot)
}

func TestAggregate_NoStatsForNonParticipants(t *testing.T) {
	stats := Aggregate(nil, map[string]bool{"u1": true})

	assert.Empty(t, stats)
}

func TestMaskUsername(t *testing.T) {
	assert.Equal(t, "User-d4e5", MaskUsername("a1b2c3d4e5"))
	assert.Equal(t, "User-ab", MaskUsername("ab"))
}
