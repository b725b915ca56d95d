package projection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstream/internal/snapshot"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func snapRow(date string, playerType snapshot.PlayerType, name string, pa, pts float64) snapshot.Row {
	return snapshot.Row{
		Date:       day(date),
		PlayerType: playerType,
		Name:       `<a href="/players/12345">` + name + `</a>`,
		Team:       "NYY",
		Position:   "OF",
		PA:         pa,
		PTS:        pts,
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		name     string
		row      snapshot.Row
		expected string
	}{
		{
			name:     "html anchor",
			row:      snapshot.Row{Name: `<a href="/players/19755/aaron-judge">Aaron Judge</a>`},
			expected: "Aaron Judge",
		},
		{
			name:     "plain name falls back to PlayerName",
			row:      snapshot.Row{Name: "Aaron Judge", PlayerName: "Aaron Judge"},
			expected: "Aaron Judge",
		},
		{
			name:     "empty name field",
			row:      snapshot.Row{Name: "", PlayerName: "Juan Soto"},
			expected: "Juan Soto",
		},
		{
			name:     "nested markup keeps first anchor text",
			row:      snapshot.Row{Name: `<span><a href="#">Shohei Ohtani</a></span>`},
			expected: "Shohei Ohtani",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanName(tt.row))
		})
	}
}

func TestComputeChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("basic first vs last delta", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Aaron Judge", 630, 480),
			snapRow("2024-04-15", snapshot.PlayerTypeBatter, "Aaron Judge", 660, 510),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 1)

		rec := changes[0]
		assert.Equal(t, "Aaron Judge", rec.PlayerName)
		assert.Equal(t, snapshot.PlayerTypeBatter, rec.PlayerType)
		assert.Equal(t, 14, rec.DaysTracked)
		assert.InDelta(t, 60, rec.PAChange, 1e-9)
		assert.InDelta(t, 60, rec.PTSChange, 1e-9)
		assert.InDelta(t, 10, rec.PAPctChange, 1e-9)
		assert.InDelta(t, 60.0/450*100, rec.PTSPctChange, 1e-9)
		assert.InDelta(t, 1, rec.PTSPerPAChange, 1e-9)
		assert.InDelta(t, 60.0/14, rec.PAChangePerDay, 1e-9)
	})

	t.Run("single observation excluded", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
		}
		assert.Empty(t, ComputeChanges(ctx, rows, nil))
	})

	t.Run("same date group excluded", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 610, 455),
		}
		assert.Empty(t, ComputeChanges(ctx, rows, nil))
	})

	t.Run("two way player tracked per type", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Shohei Ohtani", 650, 500),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Shohei Ohtani", 650, 510),
			snapRow("2024-04-01", snapshot.PlayerTypePitcher, "Shohei Ohtani", 0, 300),
			snapRow("2024-04-08", snapshot.PlayerTypePitcher, "Shohei Ohtani", 0, 320),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 2)
		assert.Equal(t, snapshot.PlayerTypeBatter, changes[0].PlayerType)
		assert.Equal(t, snapshot.PlayerTypePitcher, changes[1].PlayerType)
	})

	t.Run("zero first PA yields zero pct change", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Late Callup", 0, 0),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Late Callup", 50, 30),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 1)
		assert.Zero(t, changes[0].PAPctChange)
		assert.Zero(t, changes[0].PTSPctChange)
		assert.InDelta(t, 50, changes[0].PAChange, 1e-9)
	})

	t.Run("zero PA change yields zero pts per pa", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 470),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 1)
		assert.Zero(t, changes[0].PTSPerPAChange)
		assert.InDelta(t, 20, changes[0].PTSChange, 1e-9)
	})

	t.Run("team and position from last observation", func(t *testing.T) {
		first := snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Juan Soto", 600, 450)
		first.Team = "SDP"
		last := snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Juan Soto", 610, 460)
		last.Team = "NYY"

		changes := ComputeChanges(ctx, []snapshot.Row{first, last}, nil)
		require.Len(t, changes, 1)
		assert.Equal(t, "NYY", changes[0].Team)
	})

	t.Run("output sorted by name", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Zack Gelof", 500, 300),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Zack Gelof", 510, 310),
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Aaron Judge", 610, 460),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 2)
		assert.Equal(t, "Aaron Judge", changes[0].PlayerName)
		assert.Equal(t, "Zack Gelof", changes[1].PlayerName)
	})

	t.Run("repeated analysis yields identical tables", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-15", snapshot.PlayerTypeBatter, "Aaron Judge", 480, 360),
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Juan Soto", 600, 400),
			snapRow("2024-04-15", snapshot.PlayerTypeBatter, "Juan Soto", 600, 450),
			snapRow("2024-04-01", snapshot.PlayerTypePitcher, "Gerrit Cole", 200, 300),
			snapRow("2024-04-15", snapshot.PlayerTypePitcher, "Gerrit Cole", 190, 260),
			snapRow("2024-04-01", snapshot.PlayerTypePitcher, "Logan Webb", 200, 310),
			snapRow("2024-04-15", snapshot.PlayerTypePitcher, "Logan Webb", 180, 290),
		}

		first := ComputeChanges(ctx, rows, nil)
		second := ComputeChanges(ctx, rows, nil)
		require.NotEmpty(t, first)
		assert.Equal(t, first, second)

		classifier := NewClassifier(DefaultThresholds(), nil)
		firstAnomalies := classifier.Classify(ctx, first)
		secondAnomalies := classifier.Classify(ctx, second)
		require.NotEmpty(t, firstAnomalies)
		assert.Equal(t, firstAnomalies, secondAnomalies)
	})

	t.Run("unsorted input dates", func(t *testing.T) {
		rows := []snapshot.Row{
			snapRow("2024-04-15", snapshot.PlayerTypeBatter, "Aaron Judge", 660, 510),
			snapRow("2024-04-01", snapshot.PlayerTypeBatter, "Aaron Judge", 600, 450),
			snapRow("2024-04-08", snapshot.PlayerTypeBatter, "Aaron Judge", 630, 480),
		}

		changes := ComputeChanges(ctx, rows, nil)
		require.Len(t, changes, 1)
		assert.Equal(t, day("2024-04-01"), changes[0].FirstDate)
		assert.Equal(t, day("2024-04-15"), changes[0].LastDate)
	})
}
