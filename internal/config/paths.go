package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths. This is the single source of
// truth for file locations: dated projection snapshots live under
// SnapshotsDir, generated reports under ReportsDir, team split and pitcher
// handedness CSVs under SplitsDir.
type Paths struct {
	DataDir      string
	SnapshotsDir string
	ReportsDir   string
	SplitsDir    string
	LogsDir      string
}

// NewPaths derives the directory layout from the configured base directories.
// Relative paths are kept relative so the tools work from the repo checkout,
// matching how the snapshot history is committed alongside the code.
func NewPaths(cfg PathsConfig) *Paths {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	logsDir := cfg.LogsDir
	if logsDir == "" {
		logsDir = "logs"
	}

	return &Paths{
		DataDir:      dataDir,
		SnapshotsDir: filepath.Join(dataDir, "ac_data"),
		ReportsDir:   filepath.Join(dataDir, "reports"),
		SplitsDir:    filepath.Join(dataDir, "splits"),
		LogsDir:      logsDir,
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.DataDir,
		p.SnapshotsDir,
		p.ReportsDir,
		p.SplitsDir,
		p.LogsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetSnapshotPath returns the full path for a snapshot file
func (p *Paths) GetSnapshotPath(filename string) string {
	return filepath.Join(p.SnapshotsDir, filename)
}

// GetReportPath returns the full path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetSplitsPath returns the full path for a splits data file
func (p *Paths) GetSplitsPath(filename string) string {
	return filepath.Join(p.SplitsDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
