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
	"smartstream/internal/snapshot"
)

// acfetch pulls today's auction calculator projections for batters and
// pitchers and writes them as dated snapshot CSVs.
func main() {
	dateStr := flag.String("date", "", "snapshot date (YYYY-MM-DD), defaults to today")
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

	date := time.Now()
	if *dateStr != "" {
		date, err = time.Parse(snapshot.SnapshotDateFormat, *dateStr)
		if err != nil {
			logger.ErrorContext(ctx, "Invalid date", "date", *dateStr, "error", err)
			os.Exit(1)
		}
	}

	paths := config.NewPaths(cfg.Paths)
	if err := paths.EnsureDirectories(); err != nil {
		logger.ErrorContext(ctx, "Failed to create directories", "error", err)
		os.Exit(1)
	}

	client := fangraphs.NewClient(cfg.FanGraphs, logger)
	store := snapshot.NewStore(paths.SnapshotsDir, logger)

	for _, playerType := range []snapshot.PlayerType{snapshot.PlayerTypeBatter, snapshot.PlayerTypePitcher} {
		logger.InfoContext(ctx, "Fetching auction data", "player_type", string(playerType))

		players, err := client.AuctionData(ctx, playerType)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to fetch auction data",
				"player_type", string(playerType), "error", err)
			os.Exit(1)
		}
		if len(players) == 0 {
			logger.WarnContext(ctx, "No players in auction response",
				"player_type", string(playerType))
			continue
		}

		rows := make([]snapshot.Row, 0, len(players))
		for _, p := range players {
			rows = append(rows, p.Row(date, playerType))
		}

		path, err := store.Write(rows)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to write snapshot",
				"player_type", string(playerType), "error", err)
			os.Exit(1)
		}
		logger.InfoContext(ctx, "Snapshot saved",
			"path", path, "players", len(rows))
	}
}
