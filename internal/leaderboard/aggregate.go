package leaderboard

import (
	"log"
	"sort"
	"time"
)

// defaultTimeSeconds is assumed when an attempt carries no elapsed time.
const defaultTimeSeconds = 60

// Aggregate folds the full attempt collection into one UserStats per distinct
// user id. The fold is pure: it reads the input slice, touches no shared
// state, and produces the same averages regardless of input order (sums are
// accumulated first and divided once at the end).
//
// Malformed attempts (total_questions < 1) contribute a 0% score instead of
// failing the whole aggregation; they are logged as data-quality issues.
// isGenuine decides, at finalization time, whether a user id belongs to a
// registered profile; ids without one are tagged as bots.
func Aggregate(attempts []Attempt, isGenuine map[string]bool) map[string]*UserStats {
	type accumulator struct {
		scorePctSum float64
		timeSecsSum float64
		count       int
		lastAt      time.Time
	}

	accs := make(map[string]*accumulator)
	for _, a := range attempts {
		acc := accs[a.UserID]
		if acc == nil {
			acc = &accumulator{}
			accs[a.UserID] = acc
		}

		acc.scorePctSum += scorePercent(a)
		acc.timeSecsSum += float64(attemptTimeSeconds(a))
		acc.count++
		if a.CreatedAt.After(acc.lastAt) {
			acc.lastAt = a.CreatedAt
		}
	}

	stats := make(map[string]*UserStats, len(accs))
	for userID, acc := range accs {
		stats[userID] = &UserStats{
			UserID:            userID,
			UsernameMasked:    MaskUsername(userID),
			AverageScorePct:   acc.scorePctSum / float64(acc.count),
			AverageTimeSecs:   acc.timeSecsSum / float64(acc.count),
			InterviewsTaken:   acc.count,
			LastInterviewDate: acc.lastAt,
			IsBot:             !isGenuine[userID],
		}
	}
	return stats
}

// scorePercent converts one attempt to its percentage contribution, clamped
// to [0,100]. A non-positive question count would divide by zero; such
// attempts count as 0%.
func scorePercent(a Attempt) float64 {
	if a.TotalQuestions < 1 {
		log.Printf("[leaderboard] data-quality: attempt for user %s has total_questions=%d, counting as 0%%",
			a.UserID, a.TotalQuestions)
		return 0
	}
	pct := float64(a.Score) / float64(a.TotalQuestions) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

func attemptTimeSeconds(a Attempt) int {
	if a.TimeSeconds == nil {
		return defaultTimeSeconds
	}
	return *a.TimeSeconds
}

// sortedUserIDs returns the stats keys in lexical order. Aggregation order is
// map-random; downstream sorting needs a stable starting point.
func sortedUserIDs(stats map[string]*UserStats) []string {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
