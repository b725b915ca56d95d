package projection

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"smartstream/internal/snapshot"
)

// Classifier applies the three anomaly rules to a change table. The rules
// are pure functions of the change records and the fixed thresholds; there
// is no state carried between runs.
type Classifier struct {
	thresholds Thresholds
	logger     *slog.Logger
}

// NewClassifier creates a classifier with the given thresholds
func NewClassifier(thresholds Thresholds, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{thresholds: thresholds, logger: logger}
}

// Classify returns the union of all rule matches. A change record matching
// several rules appears once per rule, each with that rule's label; the
// multiplicity is deliberate so each report section is self-contained.
func (c *Classifier) Classify(ctx context.Context, changes []ChangeRecord) []Anomaly {
	var anomalies []Anomaly

	for _, rec := range changes {
		if c.isMajorPAChange(rec) {
			anomalies = append(anomalies, Anomaly{ChangeRecord: rec, Type: AnomalyMajorPAChange})
		}
	}
	for _, rec := range changes {
		if c.isPTSWithoutPA(rec) {
			anomalies = append(anomalies, Anomaly{ChangeRecord: rec, Type: AnomalyPTSWithoutPA})
		}
	}
	anomalies = append(anomalies, c.unusualPTSDrops(changes)...)

	counts := make(map[AnomalyType]int)
	for _, a := range anomalies {
		counts[a.Type]++
	}
	c.logger.InfoContext(ctx, "classified anomalies",
		slog.Int("total", len(anomalies)),
		slog.Int("major_pa", counts[AnomalyMajorPAChange]),
		slog.Int("pts_without_pa", counts[AnomalyPTSWithoutPA]),
		slog.Int("unusual_pts_drop", counts[AnomalyUnusualPTSDrop]))

	return anomalies
}

// isMajorPAChange detects large swings in projected playing time
func (c *Classifier) isMajorPAChange(rec ChangeRecord) bool {
	return math.Abs(rec.PAPctChange) >= c.thresholds.MajorPAPct ||
		math.Abs(rec.PAChange) >= c.thresholds.MajorPAAbs
}

// isPTSWithoutPA detects value swings with no matching playing-time swing
func (c *Classifier) isPTSWithoutPA(rec ChangeRecord) bool {
	return math.Abs(rec.PTSPctChange) >= c.thresholds.PTSOnlyPTSPct &&
		math.Abs(rec.PAPctChange) < c.thresholds.PTSOnlyPAPct
}

// unusualPTSDrops flags players in the declining cohort (both PA and PTS
// falling) whose PTS loss exceeds what the cohort's baseline rate implies.
// The baseline is the median pts-per-PA-change within the cohort, computed
// separately for batters and pitchers.
func (c *Classifier) unusualPTSDrops(changes []ChangeRecord) []Anomaly {
	var declining []ChangeRecord
	for _, rec := range changes {
		if rec.PAChange < 0 && rec.PTSChange < 0 {
			declining = append(declining, rec)
		}
	}
	if len(declining) == 0 {
		return nil
	}

	baselines := make(map[snapshot.PlayerType]float64)
	for _, playerType := range []snapshot.PlayerType{snapshot.PlayerTypeBatter, snapshot.PlayerTypePitcher} {
		var rates []float64
		for _, rec := range declining {
			if rec.PlayerType == playerType {
				rates = append(rates, rec.PTSPerPAChange)
			}
		}
		baselines[playerType] = median(rates)
	}

	var anomalies []Anomaly
	for _, rec := range declining {
		expected := rec.PAChange * baselines[rec.PlayerType]
		if math.Abs(rec.PTSChange) > math.Abs(expected)*c.thresholds.DropRateMultiplier {
			anomalies = append(anomalies, Anomaly{ChangeRecord: rec, Type: AnomalyUnusualPTSDrop})
		}
	}

	return anomalies
}

// median returns the middle value of the input (mean of the middle pair for
// even lengths), or 0 for an empty input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
