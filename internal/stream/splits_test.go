package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstream/internal/fangraphs"
)

func TestSaveAndLoadTeamSplits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splits_vs_lhp.csv")

	splits := []fangraphs.TeamSplit{
		{TeamName: "NYY", WRCPlus: 112.4, KPct: 0.215},
		{TeamName: "COL", WRCPlus: 85.1, KPct: 0.261},
	}
	require.NoError(t, SaveTeamSplitsCSV(splits, path))

	stats, err := LoadTeamStats(path, nil)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// K% round-trips from the API fraction to percent terms
	assert.InDelta(t, 112.4, stats["NYY"].WRCPlus, 1e-9)
	assert.InDelta(t, 21.5, stats["NYY"].KPct, 1e-9)
	assert.InDelta(t, 26.1, stats["COL"].KPct, 1e-9)
}

func TestLoadTeamStatsHandDownloadedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splits.csv")

	// Quoted values with a percent suffix, as FanGraphs exports them
	content := "Tm,wRC+,K%\n" +
		"\"NYY\",\"112.4\",\"21.5%\"\n" +
		"\"COL\",\"85.1\",\"26.1%\"\n" +
		"\"BAD\",\"not a number\",\"20%\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	stats, err := LoadTeamStats(path, nil)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.InDelta(t, 21.5, stats["NYY"].KPct, 1e-9)
	assert.NotContains(t, stats, "BAD")
}

func TestLoadTeamStatsMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "splits.csv")
	require.NoError(t, os.WriteFile(path, []byte("Team,AVG\nNYY,0.270\n"), 0644))

	_, err := LoadTeamStats(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestLoadTeamStatsMissingFile(t *testing.T) {
	_, err := LoadTeamStats(filepath.Join(t.TempDir(), "absent.csv"), nil)
	require.Error(t, err)
}

func TestSaveAndLoadPitcherHandedness(t *testing.T) {
	dir := t.TempDir()
	leftPath := filepath.Join(dir, "left_handed_pitchers.csv")
	rightPath := filepath.Join(dir, "right_handed_pitchers.csv")

	left := []fangraphs.PitcherLeader{
		{PlayerName: "Tarik Skubal", Team: "DET"},
		{PlayerName: "Framber Valdez", Team: "HOU"},
	}
	right := []fangraphs.PitcherLeader{
		{PlayerName: "Gerrit Cole", Team: "NYY"},
	}
	require.NoError(t, SavePitcherListCSV(left, leftPath))
	require.NoError(t, SavePitcherListCSV(right, rightPath))

	lefties, err := LoadPitcherHandedness(leftPath, fangraphs.HandLeft)
	require.NoError(t, err)
	righties, err := LoadPitcherHandedness(rightPath, fangraphs.HandRight)
	require.NoError(t, err)

	merged := MergeHandedness(lefties, righties)
	require.Len(t, merged, 3)
	assert.Equal(t, fangraphs.HandLeft, merged["Tarik Skubal"])
	assert.Equal(t, fangraphs.HandRight, merged["Gerrit Cole"])
}

func TestTeamAbbreviation(t *testing.T) {
	assert.Equal(t, "NYY", TeamAbbreviation("New York Yankees"))
	assert.Equal(t, "WSN", TeamAbbreviation("Washington Nationals"))
	assert.Equal(t, "Unknown Club", TeamAbbreviation("Unknown Club"))
}
