package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"smartstream/internal/config"
	"smartstream/internal/fangraphs"
	"smartstream/internal/infrastructure"
	"smartstream/internal/stream"
)

// splitsfetch refreshes the inputs the streaming analyzer reads from disk:
// team offensive splits vs LHP and RHP, and the left/right handed pitcher
// lists.
func main() {
	season := flag.Int("season", time.Now().Year(), "season to pull splits for")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to create directories", "error", err)
		os.Exit(1)
	}

	client := fangraphs.NewClient(cfg.FanGraphs, logger)

	splitFiles := []struct {
		hand fangraphs.Hand
		name string
	}{
		{fangraphs.HandLeft, "splits_vs_lhp.csv"},
		{fangraphs.HandRight, "splits_vs_rhp.csv"},
	}
	for _, sf := range splitFiles {
		splits, err := client.TeamSplits(ctx, *season, sf.hand)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to fetch team splits",
				"hand", string(sf.hand), "error", err)
			os.Exit(1)
		}

		path := paths.GetSplitsPath(sf.name)
		if err := stream.SaveTeamSplitsCSV(splits, path); err != nil {
			logger.ErrorContext(ctx, "Failed to write team splits",
				"path", path, "error", err)
			os.Exit(1)
		}
		logger.InfoContext(ctx, "Team splits saved", "path", path, "teams", len(splits))
	}

	pitcherFiles := []struct {
		hand fangraphs.Hand
		name string
	}{
		{fangraphs.HandLeft, "left_handed_pitchers.csv"},
		{fangraphs.HandRight, "right_handed_pitchers.csv"},
	}
	for _, pf := range pitcherFiles {
		pitchers, err := client.PitcherLeaders(ctx, *season, pf.hand)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to fetch pitcher leaders",
				"hand", string(pf.hand), "error", err)
			os.Exit(1)
		}

		path := paths.GetSplitsPath(pf.name)
		if err := stream.SavePitcherListCSV(pitchers, path); err != nil {
			logger.ErrorContext(ctx, "Failed to write pitcher list",
				"path", path, "error", err)
			os.Exit(1)
		}
		logger.InfoContext(ctx, "Pitcher list saved", "path", path, "pitchers", len(pitchers))
	}
}
