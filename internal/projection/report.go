package projection

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Summary holds unconditioned statistics over the full change table,
// reported regardless of anomaly status.
type Summary struct {
	TotalPlayers     int
	TotalAnomalies   int
	AvgPAChange      float64
	AvgPTSChange     float64
	MaxPAIncrease    float64
	MaxPADecrease    float64
	MaxPTSIncrease   float64
	MaxPTSDecrease   float64
	AvgDaysTracked   float64
	PAIncreaseCount  int
	PTSIncreaseCount int
}

// BuildSummary computes summary statistics over all change records
func BuildSummary(changes []ChangeRecord, anomalies []Anomaly) Summary {
	s := Summary{
		TotalPlayers:   len(changes),
		TotalAnomalies: len(anomalies),
	}
	if len(changes) == 0 {
		return s
	}

	s.MaxPAIncrease = changes[0].PAChange
	s.MaxPADecrease = changes[0].PAChange
	s.MaxPTSIncrease = changes[0].PTSChange
	s.MaxPTSDecrease = changes[0].PTSChange

	var paSum, ptsSum, daysSum float64
	for _, rec := range changes {
		paSum += rec.PAChange
		ptsSum += rec.PTSChange
		daysSum += float64(rec.DaysTracked)

		s.MaxPAIncrease = math.Max(s.MaxPAIncrease, rec.PAChange)
		s.MaxPADecrease = math.Min(s.MaxPADecrease, rec.PAChange)
		s.MaxPTSIncrease = math.Max(s.MaxPTSIncrease, rec.PTSChange)
		s.MaxPTSDecrease = math.Min(s.MaxPTSDecrease, rec.PTSChange)

		if rec.PAChange > 0 {
			s.PAIncreaseCount++
		}
		if rec.PTSChange > 0 {
			s.PTSIncreaseCount++
		}
	}

	n := float64(len(changes))
	s.AvgPAChange = paSum / n
	s.AvgPTSChange = ptsSum / n
	s.AvgDaysTracked = daysSum / n

	return s
}

// GroupByType groups anomalies by their rule label, each group sorted by
// magnitude: the PA percentage axis for PA-labeled rules, the PTS axis
// otherwise.
func GroupByType(anomalies []Anomaly) map[AnomalyType][]Anomaly {
	grouped := make(map[AnomalyType][]Anomaly)
	for _, a := range anomalies {
		grouped[a.Type] = append(grouped[a.Type], a)
	}

	for typ, group := range grouped {
		sortByMagnitude(typ, group)
	}

	return grouped
}

// sortByMagnitude orders a group by descending absolute percentage change on
// the axis named in the rule label.
func sortByMagnitude(typ AnomalyType, group []Anomaly) {
	byPA := strings.Contains(string(typ), "PA")
	sort.SliceStable(group, func(i, j int) bool {
		if byPA {
			return math.Abs(group[i].PAPctChange) > math.Abs(group[j].PAPctChange)
		}
		return math.Abs(group[i].PTSPctChange) > math.Abs(group[j].PTSPctChange)
	})
}

// anomalyTypeOrder fixes the section order of the text report
var anomalyTypeOrder = []AnomalyType{
	AnomalyMajorPAChange,
	AnomalyPTSWithoutPA,
	AnomalyUnusualPTSDrop,
}

// WriteReport emits the ranked anomaly report as formatted text. Each
// section shows at most ReportTopN entries.
func WriteReport(w io.Writer, changes []ChangeRecord, anomalies []Anomaly) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 80) + "\n")
	b.WriteString("SMART STREAM PROJECTION CHANGE REPORT\n")
	b.WriteString("First Date to Most Recent Analysis\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")

	if len(changes) > 0 {
		minDate := changes[0].FirstDate
		maxDate := changes[0].LastDate
		for _, rec := range changes[1:] {
			if rec.FirstDate.Before(minDate) {
				minDate = rec.FirstDate
			}
			if rec.LastDate.After(maxDate) {
				maxDate = rec.LastDate
			}
		}
		fmt.Fprintf(&b, "Analysis Period: %s to %s\n", minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))
		fmt.Fprintf(&b, "Total Players Analyzed: %d\n\n", len(changes))
	}

	if len(anomalies) == 0 {
		b.WriteString("No significant anomalies detected in the data.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	grouped := GroupByType(anomalies)
	for _, typ := range anomalyTypeOrder {
		group, ok := grouped[typ]
		if !ok {
			continue
		}

		fmt.Fprintf(&b, "\n%s:\n", strings.ToUpper(string(typ)))
		b.WriteString(strings.Repeat("-", 50) + "\n")

		top := group
		if len(top) > ReportTopN {
			top = top[:ReportTopN]
		}
		for _, a := range top {
			fmt.Fprintf(&b, "  %s (%s) - %s to %s\n",
				a.PlayerName, a.Team,
				a.FirstDate.Format("2006-01-02"), a.LastDate.Format("2006-01-02"))
			fmt.Fprintf(&b, "    PA: %.0f → %.0f (%+.0f, %+.1f%%)\n",
				a.FirstPA, a.LastPA, a.PAChange, a.PAPctChange)
			fmt.Fprintf(&b, "    PTS: %.1f → %.1f (%+.1f, %+.1f%%)\n",
				a.FirstPTS, a.LastPTS, a.PTSChange, a.PTSPctChange)
			fmt.Fprintf(&b, "    Days Tracked: %d\n\n", a.DaysTracked)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
