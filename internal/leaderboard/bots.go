package leaderboard

import (
	"fmt"
	"math/rand"
)

// DefaultBotCount is the size of the synthetic population when no override is
// configured.
const DefaultBotCount = 975

// botBand describes one slice of the synthetic population. Numeric attributes
// are drawn uniformly within the band's ranges on every generation; the filler
// is cosmetic and intentionally not deterministic across requests.
type botBand struct {
	share         float64
	scoreMin      float64
	scoreMax      float64
	timeMinSecs   float64
	timeMaxSecs   float64
	interviewsMin int
	interviewsMax int
}

// Band proportions and ranges: mostly bronze-like filler, a smaller silver-like
// slice, and the remainder gold-like.
var botBands = []botBand{
	{share: 0.60, scoreMin: 45, scoreMax: 70, timeMinSecs: 480, timeMaxSecs: 720, interviewsMin: 2, interviewsMax: 5},
	{share: 0.30, scoreMin: 65, scoreMax: 85, timeMinSecs: 300, timeMaxSecs: 480, interviewsMin: 4, interviewsMax: 9},
	{share: 0.10, scoreMin: 75, scoreMax: 95, timeMinSecs: 180, timeMaxSecs: 360, interviewsMin: 6, interviewsMax: 13},
}

// GenerateBots produces count synthetic UserStats entries to keep leagues
// populated before organic growth. Bots have no backing attempts, never hold a
// streak, and their masked usernames are random rather than derived from any
// identity. Rank scores are filled in later by the classifier with the same
// formula real users get.
func GenerateBots(count int, rng *rand.Rand) []*UserStats {
	if count <= 0 {
		return nil
	}

	bots := make([]*UserStats, 0, count)
	remaining := count
	for i, band := range botBands {
		n := int(float64(count) * band.share)
		if i == len(botBands)-1 {
			n = remaining // last band absorbs rounding
		}
		for j := 0; j < n; j++ {
			bots = append(bots, newBot(band, rng))
		}
		remaining -= n
	}
	return bots
}

func newBot(band botBand, rng *rand.Rand) *UserStats {
	id := fmt.Sprintf("bot-%08x", rng.Uint32())
	return &UserStats{
		UserID:          id,
		UsernameMasked:  MaskUsername(id),
		AverageScorePct: uniform(rng, band.scoreMin, band.scoreMax),
		AverageTimeSecs: uniform(rng, band.timeMinSecs, band.timeMaxSecs),
		InterviewsTaken: band.interviewsMin + rng.Intn(band.interviewsMax-band.interviewsMin+1),
		StreakDays:      0,
		IsBot:           true,
	}
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
