package baseball_mlb

// Config contains MLB-specific presentation configuration
type Config struct {
	// Sport identification
	SportKey    string
	DisplayName string

	// Logo resolution
	LogoTemplate    string // %s is the lowercased three-letter team prefix
	PlaceholderLogo string
	Logos           map[string]string

	// Short criterion descriptions, in criterion order
	CriteriaNames []string
}

// DefaultConfig returns the MLB configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:        "baseball_mlb",
		DisplayName:     "MLB Baseball",
		LogoTemplate:    "https://a.espncdn.com/i/teamlogos/mlb/500/%s.png",
		PlaceholderLogo: "static/images/mlb_logo.png",
		Logos:           defaultLogos(),
		CriteriaNames: []string{
			"Road underdog coming off loss",
			"Underdog in April after series losses",
			"Home underdog after high scoring game",
		},
	}
}

func defaultLogos() map[string]string {
	const cdn = "https://a.espncdn.com/i/teamlogos/mlb/500/"
	abbr := map[string]string{
		"Yankees":      "nyy",
		"Red Sox":      "bos",
		"Blue Jays":    "tor",
		"Rays":         "tb",
		"Orioles":      "bal",
		"White Sox":    "chw",
		"Guardians":    "cle",
		"Tigers":       "det",
		"Royals":       "kc",
		"Twins":        "min",
		"Astros":       "hou",
		"Angels":       "laa",
		"Athletics":    "oak",
		"Mariners":     "sea",
		"Rangers":      "tex",
		"Mets":         "nym",
		"Phillies":     "phi",
		"Marlins":      "mia",
		"Braves":       "atl",
		"Nationals":    "wsh",
		"Cubs":         "chc",
		"Reds":         "cin",
		"Brewers":      "mil",
		"Pirates":      "pit",
		"Cardinals":    "stl",
		"Dodgers":      "lad",
		"Giants":       "sf",
		"Padres":       "sd",
		"Rockies":      "col",
		"Diamondbacks": "ari",
	}

	logos := make(map[string]string, len(abbr))
	for team, code := range abbr {
		logos[team] = cdn + code + ".png"
	}
	return logos
}
