package espn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartstream/internal/config"
)

func testESPNConfig(baseURL string) config.ESPNConfig {
	return config.ESPNConfig{
		BaseURL:       baseURL,
		Timeout:       5 * time.Second,
		Season:        2024,
		LeagueID:      27130,
		ScoringPeriod: 157,
	}
}

func TestFreeAgentPitchers(t *testing.T) {
	var gotFilter string
	var gotCookies []*http.Cookie
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/seasons/2024/segments/0/leagues/27130", r.URL.Path)
		assert.Equal(t, "157", r.URL.Query().Get("scoringPeriodId"))
		assert.Equal(t, "kona_player_info", r.URL.Query().Get("view"))
		assert.Equal(t, "kona", r.Header.Get("X-Fantasy-Source"))
		gotFilter = r.Header.Get("X-Fantasy-Filter")
		gotCookies = r.Cookies()

		w.Write([]byte(`{"players":[
			{"player":{"fullName":"Tobias Myers","proTeamId":8}},
			{"player":{"fullName":"Nameless","proTeamId":0}},
			{"player":{"fullName":"","proTeamId":10}},
			{"player":{"fullName":"Jose Soriano","proTeamId":3}}
		]}`))
	}))
	defer server.Close()

	cfg := testESPNConfig(server.URL)
	cfg.S2 = "s2value"
	cfg.SWID = "{swid}"
	client := NewClient(cfg, nil)

	pitchers, err := client.FreeAgentPitchers(context.Background())
	require.NoError(t, err)
	require.Len(t, pitchers, 2)

	assert.Equal(t, Pitcher{Name: "Tobias Myers", Team: "Milwaukee Brewers"}, pitchers[0])
	assert.Equal(t, Pitcher{Name: "Jose Soriano", Team: "Los Angeles Angels"}, pitchers[1])

	var filter fantasyFilter
	require.NoError(t, json.Unmarshal([]byte(gotFilter), &filter))
	assert.Equal(t, []string{"FREEAGENT", "WAIVERS"}, filter.Players.FilterStatus.Value)
	assert.Equal(t, []int{13}, filter.Players.FilterSlotIDs.Value)
	assert.Equal(t, []int{157}, filter.Players.FilterRanksForScoringPeriodIDs.Value)
	assert.Equal(t, 500, filter.Players.Limit)

	cookieNames := make(map[string]string)
	for _, c := range gotCookies {
		cookieNames[c.Name] = c.Value
	}
	assert.Equal(t, "s2value", cookieNames["espn_s2"])
	assert.Equal(t, "{swid}", cookieNames["SWID"])
}

func TestFreeAgentPitchersNoCookiesWhenUnset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Cookies())
		w.Write([]byte(`{"players":[]}`))
	}))
	defer server.Close()

	client := NewClient(testESPNConfig(server.URL), nil)
	pitchers, err := client.FreeAgentPitchers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pitchers)
}

func TestFreeAgentPitchersServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(testESPNConfig(server.URL), nil)
	_, err := client.FreeAgentPitchers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestProTeamName(t *testing.T) {
	assert.Equal(t, "New York Yankees", ProTeamName(10))
	assert.Equal(t, "Tampa Bay Rays", ProTeamName(30))
	assert.Equal(t, "Unknown", ProTeamName(99))
}
