package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"smartstream/internal/config"
	"smartstream/internal/infrastructure"
	"smartstream/internal/projection"
	"smartstream/internal/snapshot"
)

// projection-report analyzes the accumulated projection snapshots, flags
// anomalous changes, prints the ranked report and persists the CSV and
// Excel outputs.
func main() {
	snapshotsDir := flag.String("snapshots", "", "snapshot directory (defaults to data/ac_data)")
	outputDir := flag.String("out", "", "output directory for reports (defaults to data/reports)")
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
	if *snapshotsDir == "" {
		*snapshotsDir = paths.SnapshotsDir
	}
	if *outputDir == "" {
		*outputDir = paths.ReportsDir
	}

	loader := snapshot.NewLoader(*snapshotsDir, logger)
	rows, err := loader.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load snapshots", "error", err)
		os.Exit(1)
	}
	if len(rows) == 0 {
		logger.InfoContext(ctx, "No snapshot data found", "dir", *snapshotsDir)
		fmt.Println("No projection data found.")
		return
	}

	changes := projection.ComputeChanges(ctx, rows, logger)
	if len(changes) == 0 {
		logger.InfoContext(ctx, "No trackable changes",
			"hint", "need snapshots from at least two distinct dates")
		fmt.Println("No projection data found.")
		return
	}

	classifier := projection.NewClassifier(projection.DefaultThresholds(), logger)
	anomalies := classifier.Classify(ctx, changes)
	summary := projection.BuildSummary(changes, anomalies)

	if err := projection.WriteReport(os.Stdout, changes, anomalies); err != nil {
		logger.ErrorContext(ctx, "Failed to write report", "error", err)
		os.Exit(1)
	}

	outputs := []struct {
		name string
		save func(string) error
	}{
		{"all_projection_changes.csv", func(p string) error {
			return projection.SaveChangesCSV(changes, p)
		}},
		{"projection_anomalies.csv", func(p string) error {
			return projection.SaveAnomaliesCSV(anomalies, p)
		}},
		{"projection_summary_stats.csv", func(p string) error {
			return projection.SaveSummaryCSV(summary, p)
		}},
		{"projection_anomalies.xlsx", func(p string) error {
			return projection.SaveAnomaliesWorkbook(anomalies, p)
		}},
	}
	for _, out := range outputs {
		path := filepath.Join(*outputDir, out.name)
		if err := out.save(path); err != nil {
			logger.ErrorContext(ctx, "Failed to save output", "path", path, "error", err)
			os.Exit(1)
		}
		logger.InfoContext(ctx, "Output saved", "path", path)
	}

	logger.InfoContext(ctx, "Analysis complete",
		"players", summary.TotalPlayers,
		"anomalies", summary.TotalAnomalies)
}
