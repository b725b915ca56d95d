package snapshot

import (
	"fmt"
	"time"
)

// PlayerType distinguishes the two projection universes
type PlayerType string

const (
	// PlayerTypeBatter marks rows from a batters snapshot
	PlayerTypeBatter PlayerType = "batter"
	// PlayerTypePitcher marks rows from a pitchers snapshot
	PlayerTypePitcher PlayerType = "pitcher"
)

// Row is one player's projected value on one pull date. Name carries the
// HTML-decorated link text exactly as the projection source reports it;
// PlayerName is the plain-text fallback. PA is plate appearances for batters
// and the equivalent usage proxy for pitchers; PTS is the single aggregate
// fantasy value score.
type Row struct {
	Date       time.Time
	PlayerType PlayerType
	Name       string
	PlayerName string
	Team       string
	Position   string
	PA         float64
	PTS        float64
}

// SnapshotDateFormat is the date token used in snapshot filenames
const SnapshotDateFormat = "2006-01-02"

// Filename returns the canonical snapshot filename for a date and player type
func Filename(date time.Time, playerType PlayerType) string {
	return fmt.Sprintf("%s_fangraphs_%ss.csv", date.Format(SnapshotDateFormat), playerType)
}
