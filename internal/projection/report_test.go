package projection

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstream/internal/snapshot"
)

func TestBuildSummary(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		s := BuildSummary(nil, nil)
		assert.Zero(t, s.TotalPlayers)
		assert.Zero(t, s.AvgPAChange)
	})

	t.Run("statistics over mixed changes", func(t *testing.T) {
		changes := []ChangeRecord{
			change("A", snapshot.PlayerTypeBatter, 600, 650, 400, 440),
			change("B", snapshot.PlayerTypeBatter, 600, 570, 400, 380),
			change("C", snapshot.PlayerTypePitcher, 200, 200, 300, 310),
		}
		anomalies := []Anomaly{
			{ChangeRecord: changes[0], Type: AnomalyMajorPAChange},
		}

		s := BuildSummary(changes, anomalies)
		assert.Equal(t, 3, s.TotalPlayers)
		assert.Equal(t, 1, s.TotalAnomalies)
		assert.InDelta(t, (50.0-30.0+0)/3, s.AvgPAChange, 1e-9)
		assert.InDelta(t, 50, s.MaxPAIncrease, 1e-9)
		assert.InDelta(t, -30, s.MaxPADecrease, 1e-9)
		assert.InDelta(t, 40, s.MaxPTSIncrease, 1e-9)
		assert.InDelta(t, -20, s.MaxPTSDecrease, 1e-9)
		assert.InDelta(t, 7, s.AvgDaysTracked, 1e-9)
		assert.Equal(t, 1, s.PAIncreaseCount)
		assert.Equal(t, 2, s.PTSIncreaseCount)
	})

	t.Run("all declining keeps max increase at observed max", func(t *testing.T) {
		changes := []ChangeRecord{
			change("A", snapshot.PlayerTypeBatter, 600, 580, 400, 390),
			change("B", snapshot.PlayerTypeBatter, 600, 550, 400, 370),
		}

		s := BuildSummary(changes, nil)
		assert.InDelta(t, -20, s.MaxPAIncrease, 1e-9)
		assert.InDelta(t, -50, s.MaxPADecrease, 1e-9)
		assert.Zero(t, s.PAIncreaseCount)
	})
}

func TestGroupByTypeSorting(t *testing.T) {
	t.Run("pa rules sort by pa percentage magnitude", func(t *testing.T) {
		anomalies := []Anomaly{
			{ChangeRecord: change("Small", snapshot.PlayerTypeBatter, 600, 700, 400, 400), Type: AnomalyMajorPAChange},
			{ChangeRecord: change("Big", snapshot.PlayerTypeBatter, 600, 400, 400, 400), Type: AnomalyMajorPAChange},
		}

		grouped := GroupByType(anomalies)
		group := grouped[AnomalyMajorPAChange]
		require.Len(t, group, 2)
		assert.Equal(t, "Big", group[0].PlayerName)
		assert.Equal(t, "Small", group[1].PlayerName)
	})

	t.Run("drop rate rule sorts by pts percentage magnitude", func(t *testing.T) {
		anomalies := []Anomaly{
			{ChangeRecord: change("Mild", snapshot.PlayerTypePitcher, 200, 195, 300, 270), Type: AnomalyUnusualPTSDrop},
			{ChangeRecord: change("Steep", snapshot.PlayerTypePitcher, 200, 195, 300, 150), Type: AnomalyUnusualPTSDrop},
		}

		grouped := GroupByType(anomalies)
		group := grouped[AnomalyUnusualPTSDrop]
		require.Len(t, group, 2)
		assert.Equal(t, "Steep", group[0].PlayerName)
	})
}

func TestWriteReport(t *testing.T) {
	t.Run("no anomalies", func(t *testing.T) {
		changes := []ChangeRecord{
			change("Aaron Judge", snapshot.PlayerTypeBatter, 600, 605, 400, 405),
		}

		var buf strings.Builder
		require.NoError(t, WriteReport(&buf, changes, nil))

		out := buf.String()
		assert.Contains(t, out, "SMART STREAM PROJECTION CHANGE REPORT")
		assert.Contains(t, out, "Analysis Period: 2024-04-01 to 2024-04-08")
		assert.Contains(t, out, "Total Players Analyzed: 1")
		assert.Contains(t, out, "No significant anomalies detected")
	})

	t.Run("sections in fixed order with entries", func(t *testing.T) {
		rec := change("Aaron Judge", snapshot.PlayerTypeBatter, 600, 450, 400, 300)
		rec.Team = "NYY"
		changes := []ChangeRecord{rec}
		anomalies := []Anomaly{
			{ChangeRecord: rec, Type: AnomalyUnusualPTSDrop},
			{ChangeRecord: rec, Type: AnomalyMajorPAChange},
		}

		var buf strings.Builder
		require.NoError(t, WriteReport(&buf, changes, anomalies))

		out := buf.String()
		paIdx := strings.Index(out, "MAJOR PA CHANGE:")
		dropIdx := strings.Index(out, "UNUSUAL PTS DROP RATE:")
		require.GreaterOrEqual(t, paIdx, 0)
		require.GreaterOrEqual(t, dropIdx, 0)
		assert.Less(t, paIdx, dropIdx)

		assert.Contains(t, out, "Aaron Judge (NYY) - 2024-04-01 to 2024-04-08")
		assert.Contains(t, out, "PA: 600 → 450 (-150, -25.0%)")
		assert.Contains(t, out, "PTS: 400.0 → 300.0 (-100.0, -25.0%)")
		assert.Contains(t, out, "Days Tracked: 7")
	})

	t.Run("sections capped at top entries", func(t *testing.T) {
		var anomalies []Anomaly
		var changes []ChangeRecord
		for i := 0; i < ReportTopN+5; i++ {
			rec := change(fmt.Sprintf("Player %02d", i), snapshot.PlayerTypeBatter, 600, 450, 400, 300)
			changes = append(changes, rec)
			anomalies = append(anomalies, Anomaly{ChangeRecord: rec, Type: AnomalyMajorPAChange})
		}

		var buf strings.Builder
		require.NoError(t, WriteReport(&buf, changes, anomalies))

		entries := strings.Count(buf.String(), "Days Tracked:")
		assert.Equal(t, ReportTopN, entries)
	})
}
