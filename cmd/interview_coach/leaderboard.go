package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/leaderboard"
	"github.com/jonathan/interview-coach/internal/observability"
	"github.com/jonathan/interview-coach/internal/server"
)

var (
	leaderboardLeague string
	leaderboardUser   string
	leaderboardPage   int
	leaderboardLimit  int
	leaderboardPretty bool
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Compute and print a leaderboard snapshot",
	Long:  `Compute the current leaderboard directly from the database and print it as JSON, bypassing the HTTP server.`,
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardLeague, "league", "", "League filter: gold, silver or bronze (default: all)")
	leaderboardCmd.Flags().StringVar(&leaderboardUser, "user", "", "User ID to personalize the snapshot for")
	leaderboardCmd.Flags().IntVar(&leaderboardPage, "page", 1, "Page number for single-league views")
	leaderboardCmd.Flags().IntVar(&leaderboardLimit, "limit", 50, "Page size for single-league views")
	leaderboardCmd.Flags().BoolVar(&leaderboardPretty, "pretty", false, "Print a formatted board instead of JSON")
	rootCmd.AddCommand(leaderboardCmd)
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	lbConfig, err := config.NewLeaderboardConfig()
	if err != nil {
		return fmt.Errorf("failed to create leaderboard config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	service := server.NewLeaderboardService(database, leaderboard.Config{
		BotCount:         lbConfig.BotCount,
		ActiveWindowDays: lbConfig.ActiveWindowDays,
	})

	league := leaderboard.ParseLeague(leaderboardLeague)

	if league == leaderboard.LeagueAll {
		snap, err := service.Snapshot(ctx, leaderboardUser)
		if err != nil {
			return fmt.Errorf("failed to compute leaderboard: %w", err)
		}
		if leaderboardPretty {
			observability.NewPrinter(os.Stdout).PrintSnapshot(snap)
			return nil
		}
		return printJSON(snap)
	}

	page, err := service.LeaguePage(ctx, leaderboardUser, league, leaderboardPage, leaderboardLimit)
	if err != nil {
		return fmt.Errorf("failed to compute leaderboard: %w", err)
	}
	if leaderboardPretty {
		observability.NewPrinter(os.Stdout).PrintLeaguePage(page)
		return nil
	}
	return printJSON(page)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
