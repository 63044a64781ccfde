package leaderboard

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultTopSize is how many rows each league contributes to the default view.
const defaultTopSize = 15

// AttemptSource is the read-only interview attempt store.
type AttemptSource interface {
	ListAttempts(ctx context.Context) ([]Attempt, error)
}

// IdentitySource resolves the set of genuine registered user ids.
type IdentitySource interface {
	ListUserIDs(ctx context.Context) ([]string, error)
}

// Config tunes the snapshot computation.
type Config struct {
	BotCount         int
	ActiveWindowDays int
}

func (c Config) withDefaults() Config {
	if c.BotCount == 0 {
		c.BotCount = DefaultBotCount
	}
	if c.ActiveWindowDays == 0 {
		c.ActiveWindowDays = DefaultActiveWindowDays
	}
	return c
}

// Service recomputes the full leaderboard from the attempt and identity
// stores on every call. Nothing is cached or persisted; cost grows with the
// historical attempt count, which is accepted at current scale.
type Service struct {
	attempts   AttemptSource
	identities IdentitySource
	cfg        Config
	rng        *rand.Rand
	now        func() time.Time
}

// Option customizes a Service, mainly for tests.
type Option func(*Service)

// WithClock overrides the evaluation instant.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand overrides the bot generator's randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// NewService creates a snapshot service over the two upstream stores.
func NewService(attempts AttemptSource, identities IdentitySource, cfg Config, opts ...Option) *Service {
	s := &Service{
		attempts:   attempts,
		identities: identities,
		cfg:        cfg.withDefaults(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// board is the fully classified population for one request.
type board struct {
	classification *Classification
	stats          map[string]*UserStats
}

// build reads both stores, aggregates, computes streaks, generates the bot
// population, and classifies everyone. Both upstream reads run concurrently;
// either failure aborts the whole computation per the no-partial-results
// policy.
func (s *Service) build(ctx context.Context) (*board, error) {
	var (
		attempts []Attempt
		ids      []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if attempts, err = s.attempts.ListAttempts(gctx); err != nil {
			return fmt.Errorf("reading interview attempts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if ids, err = s.identities.ListUserIDs(gctx); err != nil {
			return fmt.Errorf("reading registered profiles: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	genuine := make(map[string]bool, len(ids))
	for _, id := range ids {
		genuine[id] = true
	}

	now := s.now()
	stats := Aggregate(attempts, genuine)

	timesByUser := make(map[string][]time.Time)
	for _, a := range attempts {
		if genuine[a.UserID] {
			timesByUser[a.UserID] = append(timesByUser[a.UserID], a.CreatedAt)
		}
	}
	for id, st := range stats {
		if !st.IsBot {
			st.StreakDays = StreakDays(timesByUser[id], now)
		}
	}

	// Deterministic member order before classification so equal rank scores
	// resolve the same way on every recomputation.
	members := make([]*UserStats, 0, len(stats)+max(s.cfg.BotCount, 0))
	for _, id := range sortedUserIDs(stats) {
		members = append(members, stats[id])
	}
	bots := GenerateBots(s.cfg.BotCount, s.rng)
	members = append(members, bots...)

	all := make(map[string]*UserStats, len(members))
	for _, m := range members {
		all[m.UserID] = m
	}

	return &board{
		classification: Classify(members, now, s.cfg.ActiveWindowDays),
		stats:          all,
	}, nil
}

// Snapshot computes the default (league=all) view. currentUserID may be empty
// for anonymous callers; the boards are identical either way.
func (s *Service) Snapshot(ctx context.Context, currentUserID string) (*Snapshot, error) {
	b, err := s.build(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		CurrentUser: b.currentUser(currentUserID),
		Leagues: Leagues{
			Gold:   b.leagueBoard(LeagueGold, currentUserID),
			Silver: b.leagueBoard(LeagueSilver, currentUserID),
			Bronze: b.leagueBoard(LeagueBronze, currentUserID),
		},
	}, nil
}

// LeaguePage computes one paginated league view.
func (s *Service) LeaguePage(ctx context.Context, currentUserID string, league League, page, limit int) (*LeaguePage, error) {
	b, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	c := b.classification
	members := c.ByLeague[league]
	total := len(members)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	offset := c.RankOffset(league)
	users := make([]LeaderRow, 0, end-start)
	for i := start; i < end; i++ {
		users = append(users, memberRow(members[i], offset+i+1))
	}

	return &LeaguePage{
		CurrentUser: b.currentUser(currentUserID),
		League:      league,
		Users:       users,
		Pagination: Pagination{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasMore: page*limit < total,
		},
		LeagueCounts: LeagueCounts{
			Gold:   len(c.ByLeague[LeagueGold]),
			Silver: len(c.ByLeague[LeagueSilver]),
			Bronze: len(c.ByLeague[LeagueBronze]),
		},
	}, nil
}

// leagueBoard builds one league's default view: the top rows, plus the
// requesting user's own row when they belong to this league but sit below the
// fold.
func (b *board) leagueBoard(league League, currentUserID string) LeagueBoard {
	c := b.classification
	members := c.ByLeague[league]
	offset := c.RankOffset(league)

	top := defaultTopSize
	if top > len(members) {
		top = len(members)
	}

	rows := make([]LeaderRow, 0, top+1)
	for i := 0; i < top; i++ {
		rows = append(rows, memberRow(members[i], offset+i+1))
	}

	if currentUserID != "" {
		if idx := memberIndex(members, currentUserID); idx >= top {
			rows = append(rows, memberRow(members[idx], offset+idx+1))
		}
	}

	return LeagueBoard{Total: len(members), Top: rows}
}

// currentUser assembles the personalized view, or nil when the caller is
// anonymous, unknown, or has no attempts yet.
func (b *board) currentUser(userID string) *CurrentUserView {
	if userID == "" {
		return nil
	}
	stats, ok := b.stats[userID]
	if !ok || stats.IsBot {
		return nil
	}

	c := b.classification
	league, _ := c.LeagueOf(userID)
	idx := memberIndex(c.ByLeague[league], userID)
	rank := c.RankOffset(league) + idx + 1

	return &CurrentUserView{
		UserID:           userID,
		League:           league,
		Rank:             rank,
		WaitlistPosition: rank,
		AverageScore:     stats.AverageScorePct,
		AverageTimeSecs:  stats.AverageTimeSecs,
		InterviewsTaken:  stats.InterviewsTaken,
		StreakDays:       stats.StreakDays,
		Percentile:       b.percentile(stats),
		NextLeagueHint:   HintFor(stats, league, c),
	}
}

// percentile reports the user's top-N% position within the active genuine
// population (rank 1 of 100 is the top 1%). Users outside that population are
// placed by the position their score would earn; an empty population reads as
// 100.
func (b *board) percentile(stats *UserStats) float64 {
	c := b.classification
	n := len(c.ActiveGenuine)
	if n == 0 {
		return 100
	}

	pos := 0
	for i, s := range c.ActiveGenuine {
		if s.UserID == stats.UserID {
			pos = i + 1
			break
		}
	}
	if pos == 0 {
		pos = n - countOutranked(c.ActiveGenuine, stats.RankScore) + 1
	}

	pct := float64(pos) / float64(n) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

func memberRow(s *UserStats, rank int) LeaderRow {
	return LeaderRow{
		Rank:            rank,
		UsernameMasked:  s.UsernameMasked,
		AverageScore:    s.AverageScorePct,
		AverageTimeSecs: s.AverageTimeSecs,
		InterviewsTaken: s.InterviewsTaken,
		Badges:          Badges(s),
		IsBot:           s.IsBot,
	}
}

func memberIndex(members []*UserStats, userID string) int {
	for i, m := range members {
		if m.UserID == userID {
			return i
		}
	}
	return -1
}
