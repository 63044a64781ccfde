// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-coach/internal/leaderboard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxRowsToShow is the default number of rows to display per league
	maxRowsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSnapshot outputs a human-readable summary of the full leaderboard.
func (p *Printer) PrintSnapshot(snap *leaderboard.Snapshot) {
	if snap == nil {
		return
	}

	var sb strings.Builder

	writeLeague := func(name string, board leaderboard.LeagueBoard) {
		sb.WriteString(fmt.Sprintf("%s (%d members)\n", name, board.Total))
		count := min(len(board.Top), maxRowsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString("  " + formatRow(board.Top[i]) + "\n")
		}
		if board.Total > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", board.Total-count))
		}
		sb.WriteString("\n")
	}

	writeLeague("Gold", snap.Leagues.Gold)
	writeLeague("Silver", snap.Leagues.Silver)
	writeLeague("Bronze", snap.Leagues.Bronze)

	p.printBox("LEADERBOARD", strings.TrimSuffix(sb.String(), "\n"))

	p.PrintCurrentUser(snap.CurrentUser)
}

// PrintLeaguePage outputs one paginated league view.
func (p *Printer) PrintLeaguePage(page *leaderboard.LeaguePage) {
	if page == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page %d (limit %d) of %d members\n\n",
		page.Pagination.Page, page.Pagination.Limit, page.Pagination.Total))

	for _, row := range page.Users {
		sb.WriteString(formatRow(row) + "\n")
	}
	if page.Pagination.HasMore {
		sb.WriteString("...\n")
	}

	title := fmt.Sprintf("%s LEAGUE", strings.ToUpper(string(page.League)))
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))

	p.PrintCurrentUser(page.CurrentUser)
}

// PrintCurrentUser outputs the requesting user's standing, if any.
func (p *Printer) PrintCurrentUser(user *leaderboard.CurrentUserView) {
	if user == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("League:     %s (rank %d)\n", user.League, user.Rank))
	sb.WriteString(fmt.Sprintf("Average:    %.1f%% over %d interviews\n", user.AverageScore, user.InterviewsTaken))
	sb.WriteString(fmt.Sprintf("Avg time:   %.0fs\n", user.AverageTimeSecs))
	sb.WriteString(fmt.Sprintf("Streak:     %d days\n", user.StreakDays))
	sb.WriteString(fmt.Sprintf("Percentile: top %.1f%%\n", user.Percentile))

	switch user.NextLeagueHint.Type {
	case "score":
		if user.NextLeagueHint.Value > 0 {
			sb.WriteString(fmt.Sprintf("Next up:    +%d%% average score", user.NextLeagueHint.Value))
		} else {
			sb.WriteString("Next up:    already at the top")
		}
	case "interviews":
		sb.WriteString(fmt.Sprintf("Next up:    %d more interviews", user.NextLeagueHint.Value))
	}

	p.printBox("YOUR STANDING", strings.TrimSuffix(sb.String(), "\n"))
}

// formatRow renders a single leaderboard row as one line.
func formatRow(row leaderboard.LeaderRow) string {
	line := fmt.Sprintf("#%-4d %-12s %5.1f%%  %4.0fs  %3d taken",
		row.Rank, row.UsernameMasked, row.AverageScore, row.AverageTimeSecs, row.InterviewsTaken)
	if len(row.Badges) > 0 {
		line += "  [" + strings.Join(row.Badges, ", ") + "]"
	}
	return line
}
