package projection

import (
	"time"

	"smartstream/internal/snapshot"
)

// ChangeRecord is the first-vs-last snapshot delta for one player. One
// record exists per (clean player name, player type) group that was observed
// on at least two distinct dates.
type ChangeRecord struct {
	PlayerName string
	PlayerType snapshot.PlayerType
	FirstDate  time.Time
	LastDate   time.Time
	// DaysTracked is always >= 1; same-date groups never produce a record.
	DaysTracked int

	FirstPA  float64
	LastPA   float64
	FirstPTS float64
	LastPTS  float64

	PAChange     float64
	PTSChange    float64
	PAPctChange  float64
	PTSPctChange float64
	// PTSPerPAChange is PTS change per unit of PA change, defined as zero
	// when the PA change is zero.
	PTSPerPAChange  float64
	PAChangePerDay  float64
	PTSChangePerDay float64

	Team     string
	Position string
}

// AnomalyType labels which classification rule matched a change record
type AnomalyType string

const (
	// AnomalyMajorPAChange flags large swings in projected playing time
	AnomalyMajorPAChange AnomalyType = "Major PA Change"
	// AnomalyPTSWithoutPA flags value swings not explained by playing time
	AnomalyPTSWithoutPA AnomalyType = "PTS Change Without PA Change"
	// AnomalyUnusualPTSDrop flags players losing value faster than the
	// declining cohort's baseline rate implies
	AnomalyUnusualPTSDrop AnomalyType = "Unusual PTS Drop Rate"
)

// Anomaly is a change record tagged with the rule that matched it. The rules
// are independent, so the same change record may appear under several types.
type Anomaly struct {
	ChangeRecord
	Type AnomalyType
}

// Thresholds holds the fixed parameters of the three anomaly rules
type Thresholds struct {
	// Major PA Change: |pa_pct_change| >= MajorPAPct OR |pa_change| >= MajorPAAbs
	MajorPAPct float64
	MajorPAAbs float64

	// PTS Change Without PA Change: |pts_pct_change| >= PTSOnlyPTSPct AND
	// |pa_pct_change| < PTSOnlyPAPct
	PTSOnlyPTSPct float64
	PTSOnlyPAPct  float64

	// Unusual PTS Drop Rate: |pts_change| > DropRateMultiplier * |expected|
	DropRateMultiplier float64
}

// DefaultThresholds returns the standard rule parameters, tuned for
// whole-period (first-to-last) changes rather than day-over-day deltas.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MajorPAPct:         15,
		MajorPAAbs:         30,
		PTSOnlyPTSPct:      10,
		PTSOnlyPAPct:       8,
		DropRateMultiplier: 1.5,
	}
}

// ReportTopN is how many entries each anomaly section of the text report shows
const ReportTopN = 15
