package stream

import (
	"fmt"
	"io"
	"time"
)

// WriteReport emits the weekly streaming report as formatted text, grouped
// by weekday in schedule order.
func WriteReport(w io.Writer, start time.Time, days []DayStreamers) error {
	if _, err := fmt.Fprintf(w, "Potential streaming options for the week starting %s:\n\n",
		start.Format("2006-01-02")); err != nil {
		return err
	}

	for _, day := range days {
		if _, err := fmt.Fprintf(w, "%s:\n", day.DayName); err != nil {
			return err
		}
		for _, game := range day.Games {
			m := game.Matchup
			if _, err := fmt.Fprintf(w, "  %s (%s) @ %s (%s)\n",
				m.AwayTeam, m.AwayPitcher, m.HomeTeam, m.HomePitcher); err != nil {
				return err
			}
			for _, opt := range game.Options {
				hand := string(opt.Handedness)
				if hand == "" {
					hand = "Unknown"
				}
				if _, err := fmt.Fprintf(w,
					"    Potential streaming option: %s (%s, %s)\n"+
						"      Opponent: %s\n"+
						"      Opponent stats vs %sHP: wRC+: %.2f, K%%: %.2f%%\n",
					opt.Pitcher, opt.Team, hand,
					opt.Opponent,
					hand, opt.OpponentWRCPlus, opt.OpponentKPct); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
