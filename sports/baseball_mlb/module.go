package baseball_mlb

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// Module implements the SportModule interface for MLB Baseball
type Module struct {
	config *Config
}

var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new MLB sport module.
// overrides replaces or adds team logo URLs on top of the built-in catalog.
func NewModule(overrides map[string]string) *Module {
	cfg := DefaultConfig()
	for team, url := range overrides {
		cfg.Logos[team] = url
	}
	return &Module{config: cfg}
}

// GetSportKey returns the sport identifier
func (m *Module) GetSportKey() string {
	return m.config.SportKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// TeamLogo resolves a logo from the catalog, then the CDN naming scheme,
// then the placeholder
func (m *Module) TeamLogo(team string) string {
	team = strings.TrimSpace(team)
	if logo, ok := m.config.Logos[team]; ok {
		return logo
	}

	prefix := strings.ToLower(team)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		return m.config.PlaceholderLogo
	}
	return fmt.Sprintf(m.config.LogoTemplate, prefix)
}

// PlaceholderLogo returns the generic league logo
func (m *Module) PlaceholderLogo() string {
	return m.config.PlaceholderLogo
}

// CriteriaNames returns the criterion descriptions
func (m *Module) CriteriaNames() []string {
	names := make([]string, len(m.config.CriteriaNames))
	copy(names, m.config.CriteriaNames)
	return names
}

// DescribeCriteria builds the detailed analysis blocks for a game
func (m *Module) DescribeCriteria(game models.Game) []models.CriterionDetail {
	return []models.CriterionDetail{
		roadUnderdog(game.Criteria1),
		aprilUnderdog(game.Criteria2),
		homeUnderdog(game.Criteria3),
	}
}
