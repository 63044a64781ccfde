package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-coach/internal/leaderboard"
)

func sampleRow(rank int, name string) leaderboard.LeaderRow {
	return leaderboard.LeaderRow{
		Rank:            rank,
		UsernameMasked:  name,
		AverageScore:    82.5,
		AverageTimeSecs: 210,
		InterviewsTaken: 6,
		Badges:          []string{"consistency_champ"},
	}
}

func TestPrintSnapshot_ShowsAllLeagues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSnapshot(&leaderboard.Snapshot{
		Leagues: leaderboard.Leagues{
			Gold:   leaderboard.LeagueBoard{Total: 1, Top: []leaderboard.LeaderRow{sampleRow(1, "User-aa01")}},
			Silver: leaderboard.LeagueBoard{Total: 1, Top: []leaderboard.LeaderRow{sampleRow(2, "User-bb02")}},
			Bronze: leaderboard.LeagueBoard{Total: 0},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "LEADERBOARD")
	assert.Contains(t, out, "Gold (1 members)")
	assert.Contains(t, out, "Silver (1 members)")
	assert.Contains(t, out, "Bronze (0 members)")
	assert.Contains(t, out, "User-aa01")
	assert.Contains(t, out, "consistency_champ")
	assert.NotContains(t, out, "YOUR STANDING", "no standing box for anonymous snapshots")
}

func TestPrintSnapshot_TruncatesLongLeagues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rows := make([]leaderboard.LeaderRow, 8)
	for i := range rows {
		rows[i] = sampleRow(i+1, "User-cc03")
	}
	p.PrintSnapshot(&leaderboard.Snapshot{
		Leagues: leaderboard.Leagues{
			Gold: leaderboard.LeagueBoard{Total: 20, Top: rows},
		},
	})

	assert.Contains(t, buf.String(), "... and 15 more")
}

func TestPrintLeaguePage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLeaguePage(&leaderboard.LeaguePage{
		League: leaderboard.LeagueSilver,
		Users:  []leaderboard.LeaderRow{sampleRow(4, "User-dd04")},
		Pagination: leaderboard.Pagination{
			Page: 2, Limit: 10, Total: 35, HasMore: true,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SILVER LEAGUE")
	assert.Contains(t, out, "Page 2 (limit 10) of 35 members")
	assert.Contains(t, out, "User-dd04")
	assert.Contains(t, out, "...")
}

func TestPrintCurrentUser(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCurrentUser(&leaderboard.CurrentUserView{
		UserID:          "user-1",
		League:          leaderboard.LeagueSilver,
		Rank:            12,
		AverageScore:    74.2,
		AverageTimeSecs: 250,
		InterviewsTaken: 5,
		StreakDays:      3,
		Percentile:      28.0,
		NextLeagueHint:  leaderboard.NextLeagueHint{Type: "score", Value: 6},
	})

	out := buf.String()
	assert.Contains(t, out, "YOUR STANDING")
	assert.Contains(t, out, "silver (rank 12)")
	assert.Contains(t, out, "Streak:     3 days")
	assert.Contains(t, out, "+6% average score")
}

func TestPrintCurrentUser_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCurrentUser(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "box lines stay within width")
	}
	assert.Contains(t, buf.String(), "...")
}
