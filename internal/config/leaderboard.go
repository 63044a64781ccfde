package config

import (
	"fmt"
	"os"
	"strconv"
)

// LeaderboardConfig holds tuning knobs for leaderboard snapshot builds.
type LeaderboardConfig struct {
	BotCount         int
	ActiveWindowDays int
}

// NewLeaderboardConfig creates a leaderboard configuration from environment
// variables. It reads LEADERBOARD_BOT_COUNT (default: 975) and
// LEADERBOARD_ACTIVE_WINDOW_DAYS (default: 14).
func NewLeaderboardConfig() (*LeaderboardConfig, error) {
	botCount, err := intEnv("LEADERBOARD_BOT_COUNT", 975)
	if err != nil {
		return nil, err
	}

	windowDays, err := intEnv("LEADERBOARD_ACTIVE_WINDOW_DAYS", 14)
	if err != nil {
		return nil, err
	}

	config := &LeaderboardConfig{
		BotCount:         botCount,
		ActiveWindowDays: windowDays,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *LeaderboardConfig) normalize() error {
	if c.BotCount < 0 {
		return fmt.Errorf("LEADERBOARD_BOT_COUNT cannot be negative, got: %d", c.BotCount)
	}
	if c.ActiveWindowDays < 1 {
		return fmt.Errorf("LEADERBOARD_ACTIVE_WINDOW_DAYS must be at least 1 day, got: %d", c.ActiveWindowDays)
	}
	return nil
}

// intEnv reads an integer environment variable, falling back to def when the
// variable is unset or empty.
func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return value, nil
}
