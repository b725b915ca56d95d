package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"smartstream/internal/config"
	"smartstream/internal/espn"
	"smartstream/internal/fangraphs"
	"smartstream/internal/infrastructure"
	"smartstream/internal/mlb"
	"smartstream/internal/stream"
)

// smartstream builds the weekly pitcher streaming report: probable starters
// for the next seven days, filtered to free agents facing favorable
// offenses. Run splitsfetch first to refresh the splits inputs.
func main() {
	startStr := flag.String("start", "", "week start date (YYYY-MM-DD), defaults to today")
	outPath := flag.String("out", "", "output file (defaults to data/reports/smartstream_results.txt)")
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

	start := time.Now()
	if *startStr != "" {
		start, err = time.Parse("2006-01-02", *startStr)
		if err != nil {
			logger.ErrorContext(ctx, "Invalid start date", "date", *startStr, "error", err)
			os.Exit(1)
		}
	}

	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to create directories", "error", err)
		os.Exit(1)
	}
	if *outPath == "" {
		*outPath = paths.GetReportPath("smartstream_results.txt")
	}

	lhpStats, err := stream.LoadTeamStats(paths.GetSplitsPath("splits_vs_lhp.csv"), logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load LHP splits",
			"error", err, "hint", "run splitsfetch first")
		os.Exit(1)
	}
	rhpStats, err := stream.LoadTeamStats(paths.GetSplitsPath("splits_vs_rhp.csv"), logger)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load RHP splits",
			"error", err, "hint", "run splitsfetch first")
		os.Exit(1)
	}

	lefties, err := stream.LoadPitcherHandedness(paths.GetSplitsPath("left_handed_pitchers.csv"), fangraphs.HandLeft)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load left-handed pitcher list", "error", err)
		os.Exit(1)
	}
	righties, err := stream.LoadPitcherHandedness(paths.GetSplitsPath("right_handed_pitchers.csv"), fangraphs.HandRight)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load right-handed pitcher list", "error", err)
		os.Exit(1)
	}
	handedness := stream.MergeHandedness(lefties, righties)

	mlbClient := mlb.NewClient(cfg.MLB, logger)
	week, err := mlbClient.WeekSchedule(ctx, start)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch schedule", "error", err)
		os.Exit(1)
	}

	espnClient := espn.NewClient(cfg.ESPN, logger)
	freeAgents, err := espnClient.FreeAgentPitchers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch free agent pitchers", "error", err)
		os.Exit(1)
	}

	analyzer := stream.NewAnalyzer(stream.DefaultThresholds(), lhpStats, rhpStats, handedness, freeAgents, logger)
	days := analyzer.Analyze(ctx, week)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0755); err != nil {
		logger.ErrorContext(ctx, "Failed to create output directory", "error", err)
		os.Exit(1)
	}
	file, err := os.Create(*outPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create output file", "path", *outPath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := stream.WriteReport(file, start, days); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Streaming report saved", "path", *outPath, "days", len(days))
}
