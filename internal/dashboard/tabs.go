package dashboard

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/render"
)

// Tab ids. Each tab scrolls to the page section with the same id.
const (
	TabGames    = "games"
	TabBestBets = "best-bets"
	TabTrends   = "trends"
)

var tabOrder = []render.Tab{
	{ID: TabGames, Label: "Today's Games"},
	{ID: TabBestBets, Label: "Best Bets"},
	{ID: TabTrends, Label: "Trends & Stats"},
}

func validTab(id string) bool {
	for _, t := range tabOrder {
		if t.ID == id {
			return true
		}
	}
	return false
}

// ActivateTab makes id the only active tab and returns the section to scroll to.
// Activating best bets fetches them for the displayed date, every time.
func (s *Session) ActivateTab(id string) (string, error) {
	if !validTab(id) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTab, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	s.activeTab = id
	s.setLocked(ContainerTabs, s.nextToken(), s.tabNavLocked()...)

	if id == TabBestBets {
		s.issueLocked(request{kind: fetchBestBets, date: s.nav.APIDate()})
	}
	return id, nil
}

// ActiveTab returns the active tab id
func (s *Session) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

func (s *Session) tabsLocked() []render.Tab {
	tabs := make([]render.Tab, len(tabOrder))
	for i, t := range tabOrder {
		t.Active = t.ID == s.activeTab
		tabs[i] = t
	}
	return tabs
}

func (s *Session) tabNavLocked() []*html.Node {
	return render.TabNav(s.tabsLocked())
}
