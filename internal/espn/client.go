package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"smartstream/internal/config"
)

// Pitcher is one free-agent pitcher with the full name of the club that
// employs them.
type Pitcher struct {
	Name string
	Team string
}

// Client reads the ESPN fantasy league API. Only the free-agent pitcher
// pool is needed; the league itself is read-only to us.
type Client struct {
	http   *resty.Client
	cfg    config.ESPNConfig
	logger *slog.Logger
}

// NewClient creates an ESPN fantasy API client
func NewClient(cfg config.ESPNConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   resty.New().SetTimeout(cfg.Timeout),
		cfg:    cfg,
		logger: logger,
	}
}

// fantasyFilter is the X-Fantasy-Filter request header payload. Slot 13 is
// the pitcher slot; status limits the pool to unrostered players.
type fantasyFilter struct {
	Players struct {
		FilterStatus struct {
			Value []string `json:"value"`
		} `json:"filterStatus"`
		FilterSlotIDs struct {
			Value []int `json:"value"`
		} `json:"filterSlotIds"`
		FilterRanksForScoringPeriodIDs struct {
			Value []int `json:"value"`
		} `json:"filterRanksForScoringPeriodIds"`
		Limit         int `json:"limit"`
		SortPercOwned struct {
			SortAsc      bool `json:"sortAsc"`
			SortPriority int  `json:"sortPriority"`
		} `json:"sortPercOwned"`
		SortDraftRanks struct {
			SortPriority int    `json:"sortPriority"`
			SortAsc      bool   `json:"sortAsc"`
			Value        string `json:"value"`
		} `json:"sortDraftRanks"`
	} `json:"players"`
}

func buildFilter(scoringPeriod int) (string, error) {
	var filter fantasyFilter
	filter.Players.FilterStatus.Value = []string{"FREEAGENT", "WAIVERS"}
	filter.Players.FilterSlotIDs.Value = []int{13}
	filter.Players.FilterRanksForScoringPeriodIDs.Value = []int{scoringPeriod}
	filter.Players.Limit = 500
	filter.Players.SortPercOwned.SortAsc = false
	filter.Players.SortPercOwned.SortPriority = 1
	filter.Players.SortDraftRanks.SortPriority = 2
	filter.Players.SortDraftRanks.SortAsc = true
	filter.Players.SortDraftRanks.Value = "STANDARD"

	data, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("marshal fantasy filter: %w", err)
	}
	return string(data), nil
}

type leagueResponse struct {
	Players []struct {
		Player struct {
			FullName  string `json:"fullName"`
			ProTeamID int    `json:"proTeamId"`
		} `json:"player"`
	} `json:"players"`
}

// FreeAgentPitchers returns the unrostered pitcher pool for the configured
// league and scoring period. Entries with no name or no club are dropped.
func (c *Client) FreeAgentPitchers(ctx context.Context) ([]Pitcher, error) {
	filter, err := buildFilter(c.cfg.ScoringPeriod)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.cfg.BaseURL, c.cfg.Season, c.cfg.LeagueID)

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Fantasy-Source", "kona").
		SetHeader("X-Fantasy-Filter", filter).
		SetQueryParams(map[string]string{
			"scoringPeriodId": strconv.Itoa(c.cfg.ScoringPeriod),
			"view":            "kona_player_info",
		})
	if c.cfg.S2 != "" {
		req.SetCookie(&http.Cookie{Name: "espn_s2", Value: c.cfg.S2})
	}
	if c.cfg.SWID != "" {
		req.SetCookie(&http.Cookie{Name: "SWID", Value: c.cfg.SWID})
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch free agents: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch free agents: unexpected status %d", resp.StatusCode())
	}

	var payload leagueResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode league response: %w", err)
	}

	var pitchers []Pitcher
	for _, entry := range payload.Players {
		name := entry.Player.FullName
		team := ProTeamName(entry.Player.ProTeamID)
		if name == "" || entry.Player.ProTeamID == 0 {
			continue
		}
		pitchers = append(pitchers, Pitcher{Name: name, Team: team})
	}

	c.logger.InfoContext(ctx, "fetched free agent pitchers",
		slog.Int("league_id", c.cfg.LeagueID),
		slog.Int("pitchers", len(pitchers)))

	return pitchers, nil
}
