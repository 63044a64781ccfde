package leaderboard

import "time"

// maxStreakDays bounds the backward walk so a corrupt date set cannot loop
// unreasonably long.
const maxStreakDays = 365

// StreakDays counts consecutive UTC calendar days with at least one completed
// attempt, ending at now's date. A user with no attempt today has a streak of
// 0 regardless of prior activity; there is no grace period.
func StreakDays(attemptTimes []time.Time, now time.Time) int {
	if len(attemptTimes) == 0 {
		return 0
	}

	days := make(map[string]bool, len(attemptTimes))
	for _, t := range attemptTimes {
		days[dayKey(t)] = true
	}

	streak := 0
	day := now.UTC()
	for streak < maxStreakDays && days[dayKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
