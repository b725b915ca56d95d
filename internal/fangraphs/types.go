package fangraphs

import (
	"time"

	"smartstream/internal/snapshot"
)

// Hand selects a pitcher-handedness split
type Hand string

const (
	HandLeft  Hand = "L"
	HandRight Hand = "R"
)

// splitMonth returns the leaders API month code for a handedness split.
// The API overloads the month parameter: 13 selects vs LHP, 14 vs RHP.
func splitMonth(hand Hand) string {
	if hand == HandLeft {
		return "13"
	}
	return "14"
}

// AuctionPlayer is one row of the auction calculator response. Name carries
// HTML-decorated link text; PlayerName is the plain name.
type AuctionPlayer struct {
	Name       string  `json:"Name"`
	PlayerName string  `json:"PlayerName"`
	Team       string  `json:"Team"`
	Position   string  `json:"POS"`
	PA         float64 `json:"PA"`
	PTS        float64 `json:"PTS"`
}

// Row converts the auction player to a snapshot row for the given pull date
func (p AuctionPlayer) Row(date time.Time, playerType snapshot.PlayerType) snapshot.Row {
	return snapshot.Row{
		Date:       date,
		PlayerType: playerType,
		Name:       p.Name,
		PlayerName: p.PlayerName,
		Team:       p.Team,
		Position:   p.Position,
		PA:         p.PA,
		PTS:        p.PTS,
	}
}

// TeamSplit is one team's offensive line against one pitcher handedness.
// KPct arrives from the API as a fraction, not a percentage.
type TeamSplit struct {
	TeamName string  `json:"TeamName"`
	PA       float64 `json:"PA"`
	WRCPlus  float64 `json:"wRC+"`
	KPct     float64 `json:"K%"`
}

// PitcherLeader is one qualified pitcher from the leaders endpoint
type PitcherLeader struct {
	Name       string `json:"Name"`
	PlayerName string `json:"PlayerName"`
	Team       string `json:"Team"`
}

// DisplayName returns the plain pitcher name, preferring the dedicated
// plain-text field over the decorated one.
func (p PitcherLeader) DisplayName() string {
	if p.PlayerName != "" {
		return p.PlayerName
	}
	return p.Name
}

type auctionResponse struct {
	Data []AuctionPlayer `json:"data"`
}

type teamSplitResponse struct {
	Data []TeamSplit `json:"data"`
}

type pitcherLeaderResponse struct {
	Data []PitcherLeader `json:"data"`
}
