package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"smartstream/internal/config"
)

// PitcherTBD is the placeholder used when a probable pitcher has not been
// announced for a game.
const PitcherTBD = "TBD"

// Matchup is one scheduled game with its probable starters
type Matchup struct {
	AwayTeam    string
	HomeTeam    string
	AwayPitcher string
	HomePitcher string
}

// DaySchedule holds all matchups on one calendar date
type DaySchedule struct {
	Date     time.Time
	DayName  string
	Matchups []Matchup
}

// Client queries the MLB stats API schedule endpoint
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates an MLB stats API client
func NewClient(cfg config.MLBConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:    resty.New().SetTimeout(cfg.Timeout),
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

type scheduleResponse struct {
	Dates []struct {
		Date  string `json:"date"`
		Games []struct {
			Teams struct {
				Away scheduleSide `json:"away"`
				Home scheduleSide `json:"home"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

type scheduleSide struct {
	Team struct {
		Name string `json:"name"`
	} `json:"team"`
	ProbablePitcher struct {
		FullName string `json:"fullName"`
	} `json:"probablePitcher"`
}

// WeekSchedule fetches the schedule for the seven days starting at start,
// one request per day, in chronological order. Days without games are
// omitted.
func (c *Client) WeekSchedule(ctx context.Context, start time.Time) ([]DaySchedule, error) {
	var week []DaySchedule
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		days, err := c.daySchedule(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("fetch schedule for %s: %w", date.Format("2006-01-02"), err)
		}
		week = append(week, days...)
	}

	total := 0
	for _, day := range week {
		total += len(day.Matchups)
	}
	c.logger.InfoContext(ctx, "fetched week schedule",
		slog.String("start", start.Format("2006-01-02")),
		slog.Int("games", total))

	return week, nil
}

func (c *Client) daySchedule(ctx context.Context, date time.Time) ([]DaySchedule, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"sportId":        "1",
			"date":           date.Format("2006-01-02"),
			"leagueId":       "103,104",
			"hydrate":        "team,linescore,flags,liveLookin,review,probablePitcher",
			"useLatestGames": "false",
			"language":       "en",
		}).
		Get(c.baseURL + "/schedule")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	var payload scheduleResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	var days []DaySchedule
	for _, dateData := range payload.Dates {
		parsed, err := time.Parse("2006-01-02", dateData.Date)
		if err != nil {
			return nil, fmt.Errorf("parse schedule date %q: %w", dateData.Date, err)
		}

		day := DaySchedule{Date: parsed, DayName: parsed.Weekday().String()}
		for _, game := range dateData.Games {
			day.Matchups = append(day.Matchups, Matchup{
				AwayTeam:    game.Teams.Away.Team.Name,
				HomeTeam:    game.Teams.Home.Team.Name,
				AwayPitcher: pitcherName(game.Teams.Away.ProbablePitcher.FullName),
				HomePitcher: pitcherName(game.Teams.Home.ProbablePitcher.FullName),
			})
		}
		days = append(days, day)
	}
	return days, nil
}

// pitcherName substitutes the placeholder for unannounced starters
func pitcherName(fullName string) string {
	if fullName == "" {
		return PitcherTBD
	}
	return fullName
}
