package snapshot

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// snapshotHeader matches the upstream projection API field names so the
// loader (and anything else reading the history) can resolve columns by name.
var snapshotHeader = []string{"date", "Name", "PlayerName", "Team", "POS", "PA", "PTS"}

// Store writes dated projection snapshots into the snapshot directory.
// Snapshots are append-only history: one file per date and player type,
// never rewritten once the date has passed.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a snapshot store rooted at dir
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Write persists rows as the snapshot for their player type and date.
// All rows must share the date and player type given by the first row.
func (s *Store) Write(rows []Row) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no rows to write")
	}

	date := rows[0].Date
	playerType := rows[0].PlayerType
	path := filepath.Join(s.dir, Filename(date, playerType))

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(snapshotHeader); err != nil {
		return "", fmt.Errorf("write snapshot header: %w", err)
	}

	dateStr := date.Format(SnapshotDateFormat)
	for i, row := range rows {
		record := []string{
			dateStr,
			row.Name,
			row.PlayerName,
			row.Team,
			row.Position,
			strconv.FormatFloat(row.PA, 'f', -1, 64),
			strconv.FormatFloat(row.PTS, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write snapshot record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush snapshot file: %w", err)
	}

	s.logger.Info("snapshot written",
		slog.String("path", path),
		slog.String("player_type", string(playerType)),
		slog.Int("rows", len(rows)))

	return path, nil
}
