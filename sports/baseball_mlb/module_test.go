package baseball_mlb_test

import (
	"testing"

	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
)

func TestDefaultConfig(t *testing.T) {
	config := baseball_mlb.DefaultConfig()

	if config.SportKey != "baseball_mlb" {
		t.Errorf("expected sport_key baseball_mlb, got %s", config.SportKey)
	}

	if len(config.Logos) != 30 {
		t.Errorf("expected 30 team logos, got %d", len(config.Logos))
	}

	if len(config.CriteriaNames) != 3 {
		t.Errorf("expected 3 criteria names, got %d", len(config.CriteriaNames))
	}
}

func TestTeamLogo(t *testing.T) {
	module := baseball_mlb.NewModule(map[string]string{
		"Athletics": "https://cdn.example.com/ath.png",
	})

	tests := []struct {
		team string
		want string
	}{
		{"Yankees", "https://a.espncdn.com/i/teamlogos/mlb/500/nyy.png"},
		{"White Sox", "https://a.espncdn.com/i/teamlogos/mlb/500/chw.png"},
		{"Athletics", "https://cdn.example.com/ath.png"},
		{"Sea Dogs", "https://a.espncdn.com/i/teamlogos/mlb/500/sea.png"},
		{"Ox", "https://a.espncdn.com/i/teamlogos/mlb/500/ox.png"},
		{"", "static/images/mlb_logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			if got := module.TeamLogo(tt.team); got != tt.want {
				t.Errorf("TeamLogo(%q) = %q, want %q", tt.team, got, tt.want)
			}
		})
	}
}

func TestDescribeCriteria(t *testing.T) {
	module := baseball_mlb.NewModule(nil)

	game := models.Game{
		Criteria1: &models.Criteria1Result{Matches: true, Strength: 0.8, UnderdogOdds: true, RecordsMet: true, LostLast: true},
		Criteria2: &models.Criteria2Result{IsApril: true, ConsecutiveLosses: 3},
		Criteria3: &models.Criteria3Result{PreviousRuns: 9},
	}

	details := module.DescribeCriteria(game)
	if len(details) != 3 {
		t.Fatalf("expected 3 criteria blocks, got %d", len(details))
	}

	if !details[0].Matches || details[0].Strength != 0.8 {
		t.Errorf("criteria 1 result not carried: %+v", details[0])
	}

	losses := details[1].Checks[2]
	if losses.Value != "3/2" || !losses.Passed {
		t.Errorf("consecutive losses check = %+v", losses)
	}

	runs := details[2].Checks[1]
	if runs.Value != "9" || runs.Passed {
		t.Errorf("previous runs check = %+v", runs)
	}
}

func TestDescribeCriteria_MissingResults(t *testing.T) {
	module := baseball_mlb.NewModule(nil)

	details := module.DescribeCriteria(models.Game{})
	for i, d := range details {
		if d.Matches {
			t.Errorf("criteria %d should not match when absent", i+1)
		}
		for _, c := range d.Checks {
			if c.Passed {
				t.Errorf("criteria %d check %q should fail when absent", i+1, c.Label)
			}
		}
	}
}
