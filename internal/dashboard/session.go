// Package dashboard holds the per-browser dashboard state: the navigator,
// the active tab, the expanded cards and the patchable page containers.
// Every user action mutates the session under one lock and pushes the
// affected containers to the browser through a Publisher.
package dashboard

import (
	"context"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/XavierBriggs/Janus/internal/dom"
	"github.com/XavierBriggs/Janus/internal/logger"
	"github.com/XavierBriggs/Janus/internal/navigator"
	"github.com/XavierBriggs/Janus/internal/render"
	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// DashboardTitle is the page heading
const DashboardTitle = "Betting Analysis Dashboard"

const initialRecord = "0-0"

// Publisher delivers container patches to every socket of a session
type Publisher interface {
	Publish(sessionID string, patch models.Patch)
}

// Deps are the collaborators shared by all sessions
type Deps struct {
	Source    contracts.AnalysisSource
	Sport     contracts.SportModule
	Publisher Publisher
	Logger    *logger.Logger
	Location  *time.Location
	Now       func() time.Time
}

type nopPublisher struct{}

func (nopPublisher) Publish(string, models.Patch) {}

func (d Deps) withDefaults() Deps {
	if d.Publisher == nil {
		d.Publisher = nopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = logger.Discard()
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Session is one browser's dashboard
type Session struct {
	id   string
	deps Deps
	log  *logger.Logger

	mu         sync.Mutex
	nav        *navigator.Navigator
	activeTab  string
	containers map[string]*container
	games      []models.GameView
	expanded   map[string]bool
	seq        uint64
	lastActive time.Time
	started    bool
	closed     bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSession creates a session, restoring date and tab from state when given.
// Nothing is fetched until Start.
func NewSession(id string, deps Deps, state *models.SessionState) *Session {
	deps = deps.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Session{
		id:         id,
		deps:       deps,
		log:        deps.Logger.WithPrefix("Dashboard"),
		activeTab:  TabGames,
		containers: newContainers(),
		expanded:   make(map[string]bool),
		lastActive: deps.Now(),
		ctx:        ctx,
		cancel:     cancel,
	}

	if state != nil {
		s.nav = navigator.Restore(state.Date, deps.Location, deps.Now)
		if validTab(state.ActiveTab) {
			s.activeTab = state.ActiveTab
		}
	} else {
		s.nav = navigator.New(deps.Location, deps.Now)
	}

	s.fillLocked(ContainerDate, dom.TextNode(s.nav.Display()))
	s.fillLocked(ContainerTabs, s.tabNavLocked()...)
	s.fillLocked(ContainerSummary, render.SummaryCards(models.SummaryView{})...)
	s.fillLocked(ContainerRecord, render.RecordValue(initialRecord)...)
	s.fillLocked(ContainerTrends, render.Trends(emptyTrends(), deps.Sport.CriteriaNames())...)
	return s
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Start issues the initial fetches: stats and the displayed date's games,
// plus best bets when that tab was restored as active
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.closed {
		return
	}
	s.started = true

	s.issueLocked(request{kind: fetchStats})
	s.issueLocked(request{kind: fetchGames, date: s.nav.APIDate()})
	if s.activeTab == TabBestBets {
		s.issueLocked(request{kind: fetchBestBets, date: s.nav.APIDate()})
	}
}

// StepBackward moves to the previous day and reloads its games
func (s *Session) StepBackward() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	date := s.nav.StepBackward()
	s.dateChangedLocked()
	return date
}

// StepForward moves to the next day and reloads its games.
// Returns ErrFutureDate, leaving the date unchanged, when the next day is after today.
func (s *Session) StepForward() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	date, err := s.nav.StepForward()
	if err != nil {
		return s.nav.Current(), err
	}
	s.dateChangedLocked()
	return date, nil
}

func (s *Session) dateChangedLocked() {
	s.setLocked(ContainerDate, s.nextToken(), dom.TextNode(s.nav.Display()))
	s.issueLocked(request{kind: fetchGames, date: s.nav.APIDate()})
	if s.activeTab == TabBestBets {
		s.issueLocked(request{kind: fetchBestBets, date: s.nav.APIDate()})
	}
}

// Retry re-issues the last fetch that targeted the container
func (s *Session) Retry(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[name]
	if !ok {
		return ErrUnknownContainer
	}
	if c.last == nil {
		return ErrNothingToRetry
	}

	s.touchLocked()
	s.issueLocked(*c.last)
	return nil
}

// ContainerHTML returns the current markup of a container
func (s *Session) ContainerHTML(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.containers[name]
	if !ok {
		return "", ErrUnknownContainer
	}
	return c.html, nil
}

// Resync republishes every container, for a socket that connected after
// patches were already sent
func (s *Session) Resync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range containerOrder {
		c := s.containers[name]
		s.publishLocked(models.Patch{Target: c.element, Mode: models.PatchInner, HTML: c.html, Token: c.applied})
	}
}

// Page returns the full page as currently rendered
func (s *Session) Page() render.Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchLocked()
	page := render.Page{
		Title:      DashboardTitle,
		SportName:  s.deps.Sport.GetDisplayName(),
		Tabs:       s.tabsLocked(),
		Containers: make(map[string]string, len(s.containers)),
	}
	for _, c := range s.containers {
		page.Containers[c.element] = c.html
	}
	return page
}

// State returns the persistable part of the session
func (s *Session) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.SessionState{
		ID:        s.id,
		Date:      s.nav.APIDate(),
		ActiveTab: s.activeTab,
		UpdatedAt: s.lastActive,
	}
}

// LastActive returns when the session last handled a user action
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Wait blocks until in-flight fetches have settled
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight fetches and waits for them to return.
// Responses arriving after Close are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

func (s *Session) touchLocked() {
	s.lastActive = s.deps.Now()
}

func (s *Session) nextToken() uint64 {
	s.seq++
	return s.seq
}

// fillLocked sets a container's markup without publishing
func (s *Session) fillLocked(name string, nodes ...*html.Node) {
	markup, err := dom.Render(nodes...)
	if err != nil {
		s.log.Errorf("render %s: %v", name, err)
		return
	}
	s.containers[name].html = markup
}

// setLocked replaces a container's markup and publishes it
func (s *Session) setLocked(name string, token uint64, nodes ...*html.Node) {
	c := s.containers[name]
	markup, err := dom.Render(nodes...)
	if err != nil {
		s.log.Errorf("render %s: %v", name, err)
		return
	}
	c.html = markup
	c.applied = token
	s.publishLocked(models.Patch{Target: c.element, Mode: models.PatchInner, HTML: markup, Token: token})
}

func (s *Session) publishLocked(p models.Patch) {
	if s.closed {
		return
	}
	s.deps.Publisher.Publish(s.id, p)
}

func emptyTrends() []models.TrendView {
	return []models.TrendView{{Index: 1}, {Index: 2}, {Index: 3}}
}
