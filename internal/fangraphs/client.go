package fangraphs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"smartstream/internal/config"
	"smartstream/internal/snapshot"
)

// browserHeaders mimic the fantasy-tools frontend. The API rejects requests
// without them.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1.1 Safari/605.1.15",
	"Accept":          "application/json, text/plain, */*",
	"Accept-Language": "en-US,en;q=0.9",
	"Sec-Fetch-Dest":  "empty",
	"Sec-Fetch-Mode":  "cors",
	"Sec-Fetch-Site":  "same-origin",
}

// Client wraps the FanGraphs JSON endpoints used by the pipeline: the
// auction calculator for projection snapshots and the major-league leaders
// endpoint for pitcher pools and team splits. Requests are rate limited to
// one per configured interval.
type Client struct {
	http    *resty.Client
	cfg     config.FanGraphsConfig
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient creates a FanGraphs API client
func NewClient(cfg config.FanGraphsConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	http := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeaders(browserHeaders)
	if cfg.Cookie != "" {
		http.SetHeader("Cookie", cfg.Cookie)
	}

	interval := cfg.RequestInterval
	limiter := rate.NewLimiter(rate.Inf, 1)
	if interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}

	return &Client{http: http, cfg: cfg, limiter: limiter, logger: logger}
}

// AuctionData fetches auction calculator projections for one player type.
// The universe parameter is "bat" or "pit" on the wire.
func (c *Client) AuctionData(ctx context.Context, playerType snapshot.PlayerType) ([]AuctionPlayer, error) {
	universe := "bat"
	if playerType == snapshot.PlayerTypePitcher {
		universe = "pit"
	}

	params := map[string]string{
		"teams":   strconv.Itoa(c.cfg.Teams),
		"lg":      c.cfg.League,
		"dollars": strconv.Itoa(c.cfg.Dollars),
		"mb":      strconv.Itoa(c.cfg.MinBatter),
		"mp":      strconv.Itoa(c.cfg.MinPitcher),
		"msp":     strconv.Itoa(c.cfg.MinSP),
		"mrp":     strconv.Itoa(c.cfg.MinRP),
		"type":    universe,
		"players": "",
		"proj":    c.cfg.Projection,
		"split":   "",
		"points":  c.cfg.Points,
		"rep":     "0",
		"drp":     "0",
		"pp":      "C,SS,2B,3B,OF,1B",
		"pos":     "1,1,1,1,5,1,1,1,0,1,5,2,2,5,0",
		"sort":    "",
		"view":    "0",
	}

	var payload auctionResponse
	if err := c.getJSON(ctx, c.cfg.AuctionURL, "https://www.fangraphs.com/fantasy-tools/auction-calculator", params, &payload); err != nil {
		return nil, fmt.Errorf("fetch auction data for %s: %w", playerType, err)
	}

	c.logger.InfoContext(ctx, "fetched auction data",
		slog.String("player_type", string(playerType)),
		slog.Int("players", len(payload.Data)))

	return payload.Data, nil
}

// TeamSplits fetches every team's offensive line against the given pitcher
// handedness for one season.
func (c *Client) TeamSplits(ctx context.Context, season int, hand Hand) ([]TeamSplit, error) {
	params := c.leadersParams(season)
	params["stats"] = "bat"
	params["month"] = splitMonth(hand)
	params["team"] = "0,ts"
	params["pageitems"] = "30"

	var payload teamSplitResponse
	if err := c.getJSON(ctx, c.cfg.LeadersURL, "https://www.fangraphs.com/leaders/major-league", params, &payload); err != nil {
		return nil, fmt.Errorf("fetch team splits vs %sHP: %w", hand, err)
	}

	c.logger.InfoContext(ctx, "fetched team splits",
		slog.String("hand", string(hand)),
		slog.Int("teams", len(payload.Data)))

	return payload.Data, nil
}

// PitcherLeaders fetches the qualified pitchers who throw with the given
// hand in one season.
func (c *Client) PitcherLeaders(ctx context.Context, season int, hand Hand) ([]PitcherLeader, error) {
	params := c.leadersParams(season)
	params["stats"] = "pit"
	params["hand"] = string(hand)

	var payload pitcherLeaderResponse
	if err := c.getJSON(ctx, c.cfg.LeadersURL, "https://www.fangraphs.com/leaders/major-league", params, &payload); err != nil {
		return nil, fmt.Errorf("fetch %sHP leaders: %w", hand, err)
	}

	c.logger.InfoContext(ctx, "fetched pitcher leaders",
		slog.String("hand", string(hand)),
		slog.Int("pitchers", len(payload.Data)))

	return payload.Data, nil
}

// leadersParams builds the shared query for the leaders endpoint
func (c *Client) leadersParams(season int) map[string]string {
	year := strconv.Itoa(season)
	return map[string]string{
		"age":       "",
		"pos":       "all",
		"lg":        "all",
		"qual":      "y",
		"season":    year,
		"season1":   year,
		"startdate": year + "-03-01",
		"enddate":   year + "-11-01",
		"month":     "0",
		"hand":      "",
		"team":      "0",
		"pageitems": "2000000000",
		"pagenum":   "1",
		"ind":       "0",
		"rost":      "0",
		"players":   "",
		"type":      "8",
		"sortdir":   "default",
		"sortstat":  "WAR",
	}
}

// getJSON performs a rate-limited GET and decodes the JSON body
func (c *Client) getJSON(ctx context.Context, url, referer string, params map[string]string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Referer", referer).
		SetQueryParams(params).
		Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
