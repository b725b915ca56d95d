package stream

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smartstream/internal/fangraphs"
)

// SavePitcherListCSV writes a name/team list of pitchers who throw with one
// hand. One file per hand keeps the two pools independently refreshable.
func SavePitcherListCSV(pitchers []fangraphs.PitcherLeader, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create pitcher list: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Name", "Team"}); err != nil {
		return fmt.Errorf("write pitcher list header: %w", err)
	}
	for _, p := range pitchers {
		if err := writer.Write([]string{p.DisplayName(), p.Team}); err != nil {
			return fmt.Errorf("write pitcher list record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// LoadPitcherHandedness reads one hand's pitcher list and tags every name
// with that hand. Rows without both columns are skipped.
func LoadPitcherHandedness(path string, hand fangraphs.Hand) (map[string]fangraphs.Hand, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pitcher list: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read pitcher list: %w", err)
	}

	handedness := make(map[string]fangraphs.Hand)
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if len(record) < 2 {
			continue
		}
		name := strings.Trim(record[0], `"`)
		if name != "" {
			handedness[name] = hand
		}
	}
	return handedness, nil
}

// MergeHandedness combines per-hand maps. Later maps win on name conflicts.
func MergeHandedness(maps ...map[string]fangraphs.Hand) map[string]fangraphs.Hand {
	merged := make(map[string]fangraphs.Hand)
	for _, m := range maps {
		for name, hand := range m {
			merged[name] = hand
		}
	}
	return merged
}
