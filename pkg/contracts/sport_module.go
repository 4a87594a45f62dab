package contracts

import (
	"github.com/XavierBriggs/Janus/pkg/models"
)

// SportModule defines the sport-specific presentation data for the dashboard.
// This keeps team catalogs and criteria wording out of the renderers.
type SportModule interface {
	// GetSportKey returns the unique identifier for this sport (e.g., "baseball_mlb")
	GetSportKey() string

	// GetDisplayName returns the human-readable name (e.g., "MLB Baseball")
	GetDisplayName() string

	// TeamLogo returns the logo URL for a team name, never empty
	TeamLogo(team string) string

	// PlaceholderLogo returns the image used when a team has no logo
	PlaceholderLogo() string

	// CriteriaNames returns the short criterion descriptions in criterion order
	CriteriaNames() []string

	// DescribeCriteria expands a game's criteria results into labelled checks
	DescribeCriteria(game models.Game) []models.CriterionDetail
}
