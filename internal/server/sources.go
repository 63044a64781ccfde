package server

import (
	"context"

	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/leaderboard"
)

// NewLeaderboardService wires a leaderboard service over the database. The
// CLI uses this to compute snapshots without going through HTTP.
func NewLeaderboardService(database *db.DB, cfg leaderboard.Config) *leaderboard.Service {
	return leaderboard.NewService(
		&attemptSource{store: database},
		&identitySource{store: database},
		cfg,
	)
}

// attemptSource adapts the attempt store to the leaderboard's read interface.
type attemptSource struct {
	store AttemptStore
}

func (s *attemptSource) ListAttempts(ctx context.Context) ([]leaderboard.Attempt, error) {
	rows, err := s.store.ListAllAttempts(ctx)
	if err != nil {
		return nil, err
	}
	attempts := make([]leaderboard.Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, leaderboard.Attempt{
			UserID:         row.UserID.String(),
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			TimeSeconds:    row.TimeSeconds,
			CreatedAt:      row.CreatedAt,
		})
	}
	return attempts, nil
}

// identitySource adapts the profile store to the leaderboard's read interface.
type identitySource struct {
	store ProfileStore
}

func (s *identitySource) ListUserIDs(ctx context.Context) ([]string, error) {
	ids, err := s.store.ListProfileIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out, nil
}
