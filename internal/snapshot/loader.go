package snapshot

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// snapshotFilePattern matches dated snapshot filenames and captures the date
// token, e.g. "2025-04-18_fangraphs_batters.csv".
var snapshotFilePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_fangraphs_.+\.csv$`)

// Loader reads all dated snapshot CSVs from a directory and concatenates
// them into one long-form table, tagging each row with its snapshot date and
// player type. Files that fail to parse are skipped with a diagnostic.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader for the given snapshot directory
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{dir: dir, logger: logger}
}

// Load reads every snapshot file in the directory. A nil slice with a nil
// error means no usable data was found; the caller decides whether that
// aborts the analysis. A missing directory is treated the same way.
func (l *Loader) Load(ctx context.Context) ([]Row, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.WarnContext(ctx, "snapshot directory does not exist", slog.String("dir", l.dir))
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot directory %s: %w", l.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if snapshotFilePattern.MatchString(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var all []Row
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rows, err := l.loadFile(name)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping unparseable snapshot file",
				slog.String("file", name),
				slog.String("error", err.Error()))
			continue
		}

		l.logger.InfoContext(ctx, "loaded snapshot file",
			slog.String("file", name),
			slog.Int("rows", len(rows)))
		all = append(all, rows...)
	}

	l.logger.InfoContext(ctx, "combined snapshot rows",
		slog.Int("files", len(names)),
		slog.Int("total_rows", len(all)))

	return all, nil
}

// loadFile parses one snapshot file. The file handle is scoped to this call
// so nothing stays open across the iteration in Load.
func (l *Loader) loadFile(name string) ([]Row, error) {
	matches := snapshotFilePattern.FindStringSubmatch(name)
	if matches == nil {
		return nil, fmt.Errorf("filename %s does not match snapshot pattern", name)
	}

	date, err := time.Parse(SnapshotDateFormat, matches[1])
	if err != nil {
		return nil, fmt.Errorf("parse date from filename: %w", err)
	}

	playerType := PlayerTypePitcher
	if strings.Contains(name, "batters") {
		playerType = PlayerTypeBatter
	}

	file, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("open snapshot file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := indexColumns(header)
	if cols.name < 0 && cols.playerName < 0 {
		return nil, fmt.Errorf("header has neither Name nor PlayerName column")
	}
	if cols.pa < 0 || cols.pts < 0 {
		return nil, fmt.Errorf("header missing PA or PTS column")
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read record at line %d: %w", line, err)
		}

		row := Row{Date: date, PlayerType: playerType}
		row.Name = fieldAt(record, cols.name)
		row.PlayerName = fieldAt(record, cols.playerName)
		row.Team = fieldAt(record, cols.team)
		row.Position = fieldAt(record, cols.pos)

		row.PA, err = parseFloat(fieldAt(record, cols.pa))
		if err != nil {
			return nil, fmt.Errorf("parse PA at line %d: %w", line, err)
		}
		row.PTS, err = parseFloat(fieldAt(record, cols.pts))
		if err != nil {
			return nil, fmt.Errorf("parse PTS at line %d: %w", line, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// columnIndexes holds the resolved positions of the columns the analysis
// consumes; -1 means the column is absent.
type columnIndexes struct {
	name       int
	playerName int
	team       int
	pos        int
	pa         int
	pts        int
}

// indexColumns resolves columns by the upstream API header names. POS falls
// back to the auction calculator's aPOS variant.
func indexColumns(header []string) columnIndexes {
	cols := columnIndexes{name: -1, playerName: -1, team: -1, pos: -1, pa: -1, pts: -1}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "Name":
			cols.name = i
		case "PlayerName":
			cols.playerName = i
		case "Team":
			cols.team = i
		case "POS":
			cols.pos = i
		case "aPOS":
			if cols.pos < 0 {
				cols.pos = i
			}
		case "PA":
			cols.pa = i
		case "PTS":
			cols.pts = i
		}
	}
	return cols
}

func fieldAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
