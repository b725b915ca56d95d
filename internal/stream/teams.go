package stream

// teamAbbreviations maps full club names to the abbreviations the splits
// tables key on.
var teamAbbreviations = map[string]string{
	"Los Angeles Angels":    "LAA",
	"Baltimore Orioles":     "BAL",
	"Boston Red Sox":        "BOS",
	"Chicago White Sox":     "CHW",
	"Cleveland Guardians":   "CLE",
	"Detroit Tigers":        "DET",
	"Kansas City Royals":    "KCR",
	"Minnesota Twins":       "MIN",
	"New York Yankees":      "NYY",
	"Oakland Athletics":     "OAK",
	"Seattle Mariners":      "SEA",
	"Tampa Bay Rays":        "TBR",
	"Texas Rangers":         "TEX",
	"Toronto Blue Jays":     "TOR",
	"Arizona Diamondbacks":  "ARI",
	"Atlanta Braves":        "ATL",
	"Chicago Cubs":          "CHC",
	"Cincinnati Reds":       "CIN",
	"Colorado Rockies":      "COL",
	"Houston Astros":        "HOU",
	"Los Angeles Dodgers":   "LAD",
	"Miami Marlins":         "MIA",
	"Milwaukee Brewers":     "MIL",
	"New York Mets":         "NYM",
	"Philadelphia Phillies": "PHI",
	"Pittsburgh Pirates":    "PIT",
	"San Diego Padres":      "SDP",
	"San Francisco Giants":  "SFG",
	"St. Louis Cardinals":   "STL",
	"Washington Nationals":  "WSN",
}

// TeamAbbreviation resolves a full club name to its splits-table
// abbreviation, falling back to the input when the club is unknown.
func TeamAbbreviation(fullName string) string {
	if abbr, ok := teamAbbreviations[fullName]; ok {
		return abbr
	}
	return fullName
}
