package leaderboard

import "math"

// Badge tags awarded from stats thresholds.
const (
	BadgeFastThinker      = "fast_thinker"
	BadgeDeepThinker      = "deep_thinker"
	BadgeConsistencyChamp = "consistency_champ"
)

// Badge thresholds.
const (
	fastThinkerMaxSecs    = 30
	deepThinkerMinSecs    = 60
	consistencyChampCount = 10
)

// Hint fallbacks when the user already clears the boundary score but still
// sits below the cutoff position.
const (
	silverHintFallbackInterviews = 3
	bronzeHintFallbackInterviews = 5
)

// Badges derives the badge tags for one member. fast_thinker and deep_thinker
// are mutually exclusive; an average in [30,60] earns neither.
func Badges(s *UserStats) []string {
	badges := []string{}
	if s.AverageTimeSecs < fastThinkerMaxSecs {
		badges = append(badges, BadgeFastThinker)
	} else if s.AverageTimeSecs > deepThinkerMinSecs {
		badges = append(badges, BadgeDeepThinker)
	}
	if s.InterviewsTaken >= consistencyChampCount {
		badges = append(badges, BadgeConsistencyChamp)
	}
	return badges
}

// HintFor computes the requesting user's next-league progress hint. Gold
// members are already at the top and get a zero hint. Otherwise the user's
// average score is compared against the boundary user of the league above:
// a deficit becomes a "score" hint, and a user who already matches the
// boundary score gets a flat "interviews" hint instead.
func HintFor(s *UserStats, league League, c *Classification) NextLeagueHint {
	switch league {
	case LeagueGold:
		return NextLeagueHint{Type: "score", Value: 0}
	case LeagueSilver:
		return boundaryHint(s, c.GoldBoundary(), silverHintFallbackInterviews)
	default:
		return boundaryHint(s, c.SilverBoundary(), bronzeHintFallbackInterviews)
	}
}

func boundaryHint(s *UserStats, boundary *UserStats, fallbackInterviews int) NextLeagueHint {
	if boundary != nil && s.AverageScorePct < boundary.AverageScorePct {
		deficit := int(math.Ceil(boundary.AverageScorePct - s.AverageScorePct))
		return NextLeagueHint{Type: "score", Value: deficit}
	}
	return NextLeagueHint{Type: "interviews", Value: fallbackInterviews}
}
