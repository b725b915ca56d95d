package stream

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"smartstream/internal/fangraphs"
)

// TeamStats is one club's offensive line against one pitcher handedness
type TeamStats struct {
	WRCPlus float64
	KPct    float64
}

var splitsHeader = []string{"Tm", "wRC+", "K%"}

// SaveTeamSplitsCSV writes a splits table keyed by club abbreviation. The
// API reports K% as a fraction; the file stores it as a percentage so it
// reads the same as a FanGraphs export.
func SaveTeamSplitsCSV(splits []fangraphs.TeamSplit, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create splits file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(splitsHeader); err != nil {
		return fmt.Errorf("write splits header: %w", err)
	}
	for _, split := range splits {
		record := []string{
			split.TeamName,
			strconv.FormatFloat(split.WRCPlus, 'f', 1, 64),
			strconv.FormatFloat(split.KPct*100, 'f', 1, 64) + "%",
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write splits record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadTeamStats reads a splits CSV into a map keyed by club abbreviation.
// Values tolerate surrounding quotes and a trailing percent sign, so both
// our own files and hand-downloaded FanGraphs exports load. Unparseable
// rows are logged and skipped.
func LoadTeamStats(path string, logger *slog.Logger) (map[string]TeamStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open splits file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read splits file: %w", err)
	}
	if len(records) == 0 {
		return map[string]TeamStats{}, nil
	}

	cols := make(map[string]int)
	for i, name := range records[0] {
		cols[strings.TrimPrefix(strings.Trim(name, `"`), "\ufeff")] = i
	}
	tmIdx, ok1 := cols["Tm"]
	wrcIdx, ok2 := cols["wRC+"]
	kIdx, ok3 := cols["K%"]
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("splits file %s missing required columns", path)
	}

	stats := make(map[string]TeamStats)
	for _, record := range records[1:] {
		if len(record) <= tmIdx || len(record) <= wrcIdx || len(record) <= kIdx {
			continue
		}
		team := strings.Trim(record[tmIdx], `"`)

		wrcPlus, err := parseStatValue(record[wrcIdx])
		if err != nil {
			logger.Warn("skipping unparseable splits row",
				slog.String("file", filepath.Base(path)),
				slog.String("team", team),
				slog.String("error", err.Error()))
			continue
		}
		kPct, err := parseStatValue(record[kIdx])
		if err != nil {
			logger.Warn("skipping unparseable splits row",
				slog.String("file", filepath.Base(path)),
				slog.String("team", team),
				slog.String("error", err.Error()))
			continue
		}

		stats[team] = TeamStats{WRCPlus: wrcPlus, KPct: kPct}
	}

	return stats, nil
}

// parseStatValue strips quotes and a trailing percent sign before parsing
func parseStatValue(raw string) (float64, error) {
	cleaned := strings.TrimSuffix(strings.Trim(raw, `"`), "%")
	return strconv.ParseFloat(cleaned, 64)
}
