package stream

import (
	"context"
	"log/slog"
	"strings"

	"smartstream/internal/espn"
	"smartstream/internal/fangraphs"
	"smartstream/internal/mlb"
)

// Thresholds define what counts as a favorable opposing offense
type Thresholds struct {
	// MaxWRCPlus flags offenses producing below league average
	MaxWRCPlus float64
	// MinKPct flags offenses that strike out a lot, in percent terms
	MinKPct float64
}

// DefaultThresholds returns the standard streaming criteria:
// opponent wRC+ under 100 or K% over 22.
func DefaultThresholds() Thresholds {
	return Thresholds{MaxWRCPlus: 100, MinKPct: 22}
}

// Option is one recommended streaming start
type Option struct {
	Pitcher    string
	Team       string
	Handedness fangraphs.Hand
	Opponent   string
	// Opponent offense vs the pitcher's handedness
	OpponentWRCPlus float64
	OpponentKPct    float64
}

// GameStreamers pairs a matchup with its recommended starters
type GameStreamers struct {
	Matchup mlb.Matchup
	Options []Option
}

// DayStreamers groups recommendations under one weekday
type DayStreamers struct {
	DayName string
	Games   []GameStreamers
}

// Analyzer cross-references probable starters against free-agent
// availability and opponent splits.
type Analyzer struct {
	thresholds Thresholds
	lhpStats   map[string]TeamStats
	rhpStats   map[string]TeamStats
	handedness map[string]fangraphs.Hand
	available  map[string]string
	logger     *slog.Logger
}

// NewAnalyzer creates a streaming analyzer. The stats maps are keyed by
// club abbreviation; freeAgents is the unrostered pitcher pool.
func NewAnalyzer(thresholds Thresholds, lhpStats, rhpStats map[string]TeamStats,
	handedness map[string]fangraphs.Hand, freeAgents []espn.Pitcher, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}

	available := make(map[string]string, len(freeAgents))
	for _, p := range freeAgents {
		available[strings.ToLower(p.Name)] = p.Team
	}

	return &Analyzer{
		thresholds: thresholds,
		lhpStats:   lhpStats,
		rhpStats:   rhpStats,
		handedness: handedness,
		available:  available,
		logger:     logger,
	}
}

// Analyze walks a week of matchups and returns the streaming options per
// day, preserving schedule order. Days without any option are omitted.
func (a *Analyzer) Analyze(ctx context.Context, week []mlb.DaySchedule) []DayStreamers {
	var days []DayStreamers
	total := 0

	for _, day := range week {
		var games []GameStreamers
		for _, matchup := range day.Matchups {
			options := a.gameOptions(matchup)
			if len(options) > 0 {
				games = append(games, GameStreamers{Matchup: matchup, Options: options})
				total += len(options)
			}
		}
		if len(games) > 0 {
			days = append(days, DayStreamers{DayName: day.DayName, Games: games})
		}
	}

	a.logger.InfoContext(ctx, "analyzed streaming options",
		slog.Int("days", len(days)),
		slog.Int("options", total))

	return days
}

// gameOptions evaluates both probable starters of one matchup
func (a *Analyzer) gameOptions(matchup mlb.Matchup) []Option {
	var options []Option
	for _, side := range []struct {
		pitcher, team, opponent string
	}{
		{matchup.AwayPitcher, matchup.AwayTeam, matchup.HomeTeam},
		{matchup.HomePitcher, matchup.HomeTeam, matchup.AwayTeam},
	} {
		if side.pitcher == mlb.PitcherTBD {
			continue
		}
		if !a.isAvailable(side.pitcher) {
			continue
		}

		hand := a.handedness[side.pitcher]
		stats := a.opponentStats(side.opponent, hand)
		if stats.WRCPlus < a.thresholds.MaxWRCPlus || stats.KPct > a.thresholds.MinKPct {
			options = append(options, Option{
				Pitcher:         side.pitcher,
				Team:            side.team,
				Handedness:      hand,
				Opponent:        side.opponent,
				OpponentWRCPlus: stats.WRCPlus,
				OpponentKPct:    stats.KPct,
			})
		}
	}
	return options
}

// isAvailable matches a probable starter against the free-agent pool by
// case-insensitive substring containment in either direction. Exact
// matching would miss suffix and accent variants between the two sources;
// the containment heuristic can still mismatch players who share a name
// substring.
func (a *Analyzer) isAvailable(pitcher string) bool {
	needle := strings.ToLower(pitcher)
	for name := range a.available {
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return true
		}
	}
	return false
}

// opponentStats looks up the opponent's offense against the pitcher's
// hand. Unknown hands fall back to the vs-LHP table; unknown clubs yield
// zero stats, which always pass the wRC+ criterion.
func (a *Analyzer) opponentStats(opponent string, hand fangraphs.Hand) TeamStats {
	table := a.lhpStats
	if hand == fangraphs.HandRight {
		table = a.rhpStats
	}
	return table[TeamAbbreviation(opponent)]
}
