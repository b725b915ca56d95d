package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	FanGraphs FanGraphsConfig `yaml:"fangraphs" envconfig:"FANGRAPHS"`
	ESPN      ESPNConfig      `yaml:"espn" envconfig:"ESPN"`
	MLB       MLBConfig       `yaml:"mlb" envconfig:"MLB"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/smartstream.log"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	LogsDir string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// FanGraphsConfig contains FanGraphs API configuration.
// The auction parameters mirror the fantasy-tools auction calculator form.
type FanGraphsConfig struct {
	AuctionURL string        `yaml:"auction_url" envconfig:"AUCTION_URL" default:"https://www.fangraphs.com/api/fantasy/auction-calculator/data"`
	LeadersURL string        `yaml:"leaders_url" envconfig:"LEADERS_URL" default:"https://www.fangraphs.com/api/leaders/major-league/data"`
	Timeout    time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	// Minimum interval between requests, to stay polite with the API.
	RequestInterval time.Duration `yaml:"request_interval" envconfig:"REQUEST_INTERVAL" default:"1s"`

	Teams      int    `yaml:"teams" envconfig:"TEAMS" default:"10"`
	League     string `yaml:"league" envconfig:"LEAGUE" default:"MLB"`
	Dollars    int    `yaml:"dollars" envconfig:"DOLLARS" default:"1000"`
	MinBatter  int    `yaml:"min_batter" envconfig:"MIN_BATTER" default:"1"`
	MinPitcher int    `yaml:"min_pitcher" envconfig:"MIN_PITCHER" default:"20"`
	MinSP      int    `yaml:"min_sp" envconfig:"MIN_SP" default:"5"`
	MinRP      int    `yaml:"min_rp" envconfig:"MIN_RP" default:"5"`
	Projection string `yaml:"projection" envconfig:"PROJECTION" default:"ratcdc"`
	Points     string `yaml:"points" envconfig:"POINTS" default:"c|0,1,2,3,4,7,9|0,13,2,3,4"`

	// Optional member cookie for authenticated requests
	Cookie string `yaml:"cookie" envconfig:"COOKIE"`
}

// ESPNConfig contains ESPN fantasy API configuration.
// S2 and SWID are the ESPN session cookies; load them from the environment
// or a .env file, never from a checked-in config file.
type ESPNConfig struct {
	BaseURL       string        `yaml:"base_url" envconfig:"BASE_URL" default:"https://lm-api-reads.fantasy.espn.com/apis/v3/games/flb"`
	Timeout       time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
	Season        int           `yaml:"season" envconfig:"SEASON" default:"2024"`
	LeagueID      int           `yaml:"league_id" envconfig:"LEAGUE_ID" default:"27130"`
	ScoringPeriod int           `yaml:"scoring_period" envconfig:"SCORING_PERIOD" default:"157"`
	S2            string        `yaml:"-" envconfig:"S2"`
	SWID          string        `yaml:"-" envconfig:"SWID"`
}

// MLBConfig contains MLB stats API configuration
type MLBConfig struct {
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL" default:"https://statsapi.mlb.com/api/v1"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" default:"30s"`
}

// Load loads configuration from environment variables and an optional
// smartstream.yaml config file. Environment variables take precedence.
// A .env file in the working directory is loaded first if present, so the
// ESPN cookies can live outside the shell profile.
func Load() (*Config, error) {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("SMARTSTREAM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// envconfig fills unset variables with struct-tag defaults, so "field is
// non-zero" cannot distinguish an explicit environment value from a default;
// the environment is consulted directly instead. File values only fill
// fields the environment did not set.
func mergeConfigs(fileConfig, envConfig Config) Config {
	if fileConfig.Paths.DataDir != "" && !envSet("PATHS_DATA_DIR") {
		envConfig.Paths.DataDir = fileConfig.Paths.DataDir
	}
	if fileConfig.Paths.LogsDir != "" && !envSet("PATHS_LOGS_DIR") {
		envConfig.Paths.LogsDir = fileConfig.Paths.LogsDir
	}
	if fileConfig.Logging.Level != "" && !envSet("LOGGING_LEVEL") {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if fileConfig.Logging.Output != "" && !envSet("LOGGING_OUTPUT") {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if fileConfig.ESPN.LeagueID != 0 && !envSet("ESPN_LEAGUE_ID") {
		envConfig.ESPN.LeagueID = fileConfig.ESPN.LeagueID
	}
	if fileConfig.ESPN.Season != 0 && !envSet("ESPN_SEASON") {
		envConfig.ESPN.Season = fileConfig.ESPN.Season
	}
	if fileConfig.ESPN.ScoringPeriod != 0 && !envSet("ESPN_SCORING_PERIOD") {
		envConfig.ESPN.ScoringPeriod = fileConfig.ESPN.ScoringPeriod
	}
	if fileConfig.FanGraphs.Projection != "" && !envSet("FANGRAPHS_PROJECTION") {
		envConfig.FanGraphs.Projection = fileConfig.FanGraphs.Projection
	}
	if fileConfig.FanGraphs.Teams != 0 && !envSet("FANGRAPHS_TEAMS") {
		envConfig.FanGraphs.Teams = fileConfig.FanGraphs.Teams
	}
	if fileConfig.FanGraphs.Dollars != 0 && !envSet("FANGRAPHS_DOLLARS") {
		envConfig.FanGraphs.Dollars = fileConfig.FanGraphs.Dollars
	}

	return envConfig
}

// envSet reports whether the prefixed variable is present in the environment
func envSet(name string) bool {
	_, ok := os.LookupEnv("SMARTSTREAM_" + name)
	return ok
}

// getConfigFilePath returns the path to the optional YAML config file
func getConfigFilePath() string {
	if path := os.Getenv("SMARTSTREAM_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(".", "smartstream.yaml")
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.FanGraphs.Teams <= 0 {
		return fmt.Errorf("fangraphs teams must be positive, got %d", c.FanGraphs.Teams)
	}
	if c.FanGraphs.Dollars <= 0 {
		return fmt.Errorf("fangraphs dollars must be positive, got %d", c.FanGraphs.Dollars)
	}
	if c.ESPN.Season < 2000 {
		return fmt.Errorf("invalid espn season: %d", c.ESPN.Season)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		c.Logging.Format = "json"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = filepath.Join(c.Paths.LogsDir, "smartstream.log")
	}

	return nil
}
