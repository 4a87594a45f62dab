package baseball_mlb

import (
	"strconv"

	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	minConsecutiveLosses = 2
	highScoringRuns      = 10
)

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func boolCheck(label string, passed bool) models.CheckView {
	return models.CheckView{Label: label, Value: yesNo(passed), Passed: passed}
}

// roadUnderdog describes criterion 1. A missing result renders as all-failed.
func roadUnderdog(c *models.Criteria1Result) models.CriterionDetail {
	if c == nil {
		c = &models.Criteria1Result{}
	}
	return models.CriterionDetail{
		Title: "Criteria 1: Road Underdog Analysis",
		Checks: []models.CheckView{
			boolCheck("Road team underdog odds in range", c.UnderdogOdds),
			boolCheck("Records criteria met", c.RecordsMet),
			boolCheck("Lost last game", c.LostLast),
		},
		Matches:  c.Matches,
		Strength: c.Strength,
	}
}

func aprilUnderdog(c *models.Criteria2Result) models.CriterionDetail {
	if c == nil {
		c = &models.Criteria2Result{}
	}
	return models.CriterionDetail{
		Title: "Criteria 2: April Underdog Analysis",
		Checks: []models.CheckView{
			boolCheck("Game in April", c.IsApril),
			boolCheck("Is underdog (+105 or more)", c.IsUnderdog),
			{
				Label:  "Consecutive losses",
				Value:  strconv.Itoa(c.ConsecutiveLosses) + "/" + strconv.Itoa(minConsecutiveLosses),
				Passed: c.ConsecutiveLosses >= minConsecutiveLosses,
			},
			boolCheck("Was underdog in last loss", c.WasUnderdog),
		},
		Matches:  c.Matches,
		Strength: c.Strength,
	}
}

func homeUnderdog(c *models.Criteria3Result) models.CriterionDetail {
	if c == nil {
		c = &models.Criteria3Result{}
	}
	return models.CriterionDetail{
		Title: "Criteria 3: Home Underdog After High Scoring Game",
		Checks: []models.CheckView{
			boolCheck("Home team is underdog", c.IsHomeUnderdog),
			{
				Label:  "Previous game runs",
				Value:  strconv.Itoa(c.PreviousRuns),
				Passed: c.PreviousRuns >= highScoringRuns,
			},
		},
		Matches:  c.Matches,
		Strength: c.Strength,
	}
}
