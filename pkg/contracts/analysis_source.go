package contracts

import (
	"context"

	"github.com/XavierBriggs/Janus/pkg/models"
)

// AnalysisSource defines the interface for fetching precomputed analysis.
// Each call issues exactly one request; retries are driven by the user.
type AnalysisSource interface {
	// FetchGames retrieves analyzed games and the day summary for a YYYY-MM-DD date
	FetchGames(ctx context.Context, date string) (*models.GamesResponse, error)

	// FetchStats retrieves historical criteria stats and the monthly ROI trend
	FetchStats(ctx context.Context) (*models.StatsResponse, error)

	// FetchBestBets retrieves ranked recommendations for a YYYY-MM-DD date
	FetchBestBets(ctx context.Context, date string) ([]models.BestBet, error)
}

// SessionStore persists the navigable state of dashboard sessions
type SessionStore interface {
	// Load returns the saved state, or nil when the session is unknown
	Load(ctx context.Context, id string) (*models.SessionState, error)

	// Save writes the state and refreshes its expiry
	Save(ctx context.Context, state models.SessionState) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}
