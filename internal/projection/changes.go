package projection

import (
	"context"
	"log/slog"
	"regexp"
	"sort"

	"smartstream/internal/snapshot"
)

// anchorTextPattern extracts the link text from an HTML-decorated name field
var anchorTextPattern = regexp.MustCompile(`>([^<]+)<`)

// CleanName returns the plain player name for a snapshot row. The projection
// source wraps names in an HTML anchor; when that extraction yields nothing,
// the plain PlayerName field is used instead.
func CleanName(row snapshot.Row) string {
	if m := anchorTextPattern.FindStringSubmatch(row.Name); m != nil {
		return m[1]
	}
	return row.PlayerName
}

// groupKey identifies one player group. The cleaned name is not guaranteed
// unique across source name variants; the player type disambiguates two-way
// players appearing in both universes.
type groupKey struct {
	name       string
	playerType snapshot.PlayerType
}

// ComputeChanges reduces the combined snapshot table to one first-vs-last
// delta record per player group. Groups observed on fewer than two distinct
// dates are silently excluded. Division-by-zero candidates (zero first
// values, zero PA change, zero days tracked) all resolve to zero rather than
// producing infinities.
func ComputeChanges(ctx context.Context, rows []snapshot.Row, logger *slog.Logger) []ChangeRecord {
	if logger == nil {
		logger = slog.Default()
	}

	groups := make(map[groupKey][]snapshot.Row)
	for _, row := range rows {
		key := groupKey{name: CleanName(row), playerType: row.PlayerType}
		if key.name == "" {
			continue
		}
		groups[key] = append(groups[key], row)
	}

	changes := make([]ChangeRecord, 0, len(groups))
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.Slice(group, func(i, j int) bool {
			return group[i].Date.Before(group[j].Date)
		})

		first := group[0]
		last := group[len(group)-1]
		if first.Date.Equal(last.Date) {
			continue
		}

		changes = append(changes, buildChangeRecord(key, first, last))
	}

	// Deterministic output order regardless of map iteration
	sort.Slice(changes, func(i, j int) bool {
		if changes[i].PlayerName == changes[j].PlayerName {
			return changes[i].PlayerType < changes[j].PlayerType
		}
		return changes[i].PlayerName < changes[j].PlayerName
	})

	logger.InfoContext(ctx, "computed projection changes",
		slog.Int("player_groups", len(groups)),
		slog.Int("trackable_changes", len(changes)))

	return changes
}

// buildChangeRecord computes the delta fields between the anchor rows
func buildChangeRecord(key groupKey, first, last snapshot.Row) ChangeRecord {
	rec := ChangeRecord{
		PlayerName:  key.name,
		PlayerType:  key.playerType,
		FirstDate:   first.Date,
		LastDate:    last.Date,
		DaysTracked: int(last.Date.Sub(first.Date).Hours() / 24),
		FirstPA:     first.PA,
		LastPA:      last.PA,
		FirstPTS:    first.PTS,
		LastPTS:     last.PTS,
		Team:        last.Team,
		Position:    last.Position,
	}

	rec.PAChange = last.PA - first.PA
	rec.PTSChange = last.PTS - first.PTS

	if first.PA > 0 {
		rec.PAPctChange = rec.PAChange / first.PA * 100
	}
	if first.PTS > 0 {
		rec.PTSPctChange = rec.PTSChange / first.PTS * 100
	}
	if rec.PAChange != 0 {
		rec.PTSPerPAChange = rec.PTSChange / rec.PAChange
	}
	if rec.DaysTracked > 0 {
		rec.PAChangePerDay = rec.PAChange / float64(rec.DaysTracked)
		rec.PTSChangePerDay = rec.PTSChange / float64(rec.DaysTracked)
	}

	return rec
}
