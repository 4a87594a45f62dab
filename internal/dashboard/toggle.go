package dashboard

import (
	"fmt"

	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/internal/render"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// ToggleDetail flips the detailed-analysis block of one card and returns
// whether it is now expanded. Only that card is re-rendered; nothing is fetched.
func (s *Session) ToggleDetail(gameID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var game *models.GameView
	for i := range s.games {
		if s.games[i].ID == gameID {
			game = &s.games[i]
			break
		}
	}
	if game == nil {
		return false, fmt.Errorf("%w: %q", ErrUnknownGame, gameID)
	}

	s.touchLocked()
	open := !s.expanded[gameID]
	if open {
		s.expanded[gameID] = true
	} else {
		delete(s.expanded, gameID)
	}

	card, err := dom.Render(render.GameCard(*game, open))
	if err != nil {
		return open, fmt.Errorf("render card %s: %w", gameID, err)
	}

	// Keep the cached container in step with the page for resync
	c := s.containers[ContainerGames]
	if all, err := dom.Render(render.GameCards(s.games, s.isExpandedLocked)...); err == nil {
		c.html = all
	}

	s.publishLocked(models.Patch{
		Target: render.CardID(gameID),
		Mode:   models.PatchOuter,
		HTML:   card,
		Token:  c.applied,
	})
	return open, nil
}

// Expanded reports whether a card's detailed analysis is open
func (s *Session) Expanded(gameID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isExpandedLocked(gameID)
}

func (s *Session) isExpandedLocked(gameID string) bool {
	return s.expanded[gameID]
}
