package dashboard

import (
	"github.com/XavierBriggs/Janus/adapters/analysisapi"
	"github.com/XavierBriggs/Janus/internal/normalize"
	"github.com/XavierBriggs/Janus/internal/render"
	"github.com/XavierBriggs/Janus/pkg/models"
)

type fetchKind int

const (
	fetchGames fetchKind = iota
	fetchStats
	fetchBestBets
)

// request identifies one fetch; retry re-issues an identical request
type request struct {
	kind fetchKind
	date string
}

func (r request) container() string {
	switch r.kind {
	case fetchStats:
		return ContainerCharts
	case fetchBestBets:
		return ContainerBestBets
	default:
		return ContainerGames
	}
}

func (r request) loadingText() string {
	switch r.kind {
	case fetchStats:
		return "Loading statistics..."
	case fetchBestBets:
		return "Loading best bets..."
	default:
		return "Loading games..."
	}
}

func (r request) failureText() string {
	switch r.kind {
	case fetchStats:
		return "Failed to load statistics"
	case fetchBestBets:
		return "Failed to load best bets"
	default:
		return "Failed to load games"
	}
}

// unexpectedResponse is shown when a response could not be processed
const unexpectedResponse = "unexpected response from analysis service"

// issueLocked shows the loading placeholder and starts the fetch.
// The response commits only if no newer request was issued for the container.
func (s *Session) issueLocked(req request) {
	if s.closed {
		return
	}

	c := s.containers[req.container()]
	token := s.nextToken()
	c.issued = token
	last := req
	c.last = &last

	if req.kind == fetchGames {
		s.games = nil
		s.expanded = make(map[string]bool)
	}
	s.setLocked(c.name, token, render.Loading(req.loadingText()))

	s.wg.Add(1)
	go s.run(req, token)
}

func (s *Session) run(req request, token uint64) {
	defer s.wg.Done()
	defer s.recoverFetch(req, token)

	var apply func()
	switch req.kind {
	case fetchGames:
		resp, err := s.deps.Source.FetchGames(s.ctx, req.date)
		if err != nil {
			apply = s.failure(req, token, err)
			break
		}
		view, notes := normalize.Games(resp, s.deps.Sport)
		for _, note := range notes {
			s.log.Warnf("games %s: %s", req.date, note)
		}
		apply = func() { s.applyGamesLocked(token, view) }

	case fetchStats:
		resp, err := s.deps.Source.FetchStats(s.ctx)
		if err != nil {
			apply = s.failure(req, token, err)
			break
		}
		view := normalize.Stats(resp)
		apply = func() { s.applyStatsLocked(token, view) }

	case fetchBestBets:
		bets, err := s.deps.Source.FetchBestBets(s.ctx, req.date)
		if err != nil {
			apply = s.failure(req, token, err)
			break
		}
		views := normalize.BestBets(bets)
		apply = func() { s.setLocked(ContainerBestBets, token, render.BestBets(views)...) }
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	c := s.containers[req.container()]
	if !c.current(token) {
		s.log.Debugf("discarding stale %s response (token %d, latest %d)", c.name, token, c.issued)
		return
	}
	apply()
}

// recoverFetch turns a panic while fetching or rendering into the
// container's error panel
func (s *Session) recoverFetch(req request, token uint64) {
	r := recover()
	if r == nil {
		return
	}
	s.log.Errorf("%s: panic: %v", req.failureText(), r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.containers[req.container()].current(token) {
		return
	}
	message := req.failureText() + ": " + unexpectedResponse
	s.setLocked(req.container(), token, render.ErrorPanel(message, req.container()))
}

func (s *Session) failure(req request, token uint64, err error) func() {
	if s.ctx.Err() != nil {
		s.log.Debugf("%s after close: %v", req.failureText(), err)
	} else {
		s.log.Warnf("%s: %v", req.failureText(), err)
	}
	message := req.failureText() + ": " + analysisapi.Message(err)
	return func() {
		s.setLocked(req.container(), token, render.ErrorPanel(message, req.container()))
	}
}

func (s *Session) applyGamesLocked(token uint64, view models.GamesView) {
	s.games = view.Games
	s.expanded = make(map[string]bool)

	s.setLocked(ContainerGames, token, render.GameCards(view.Games, s.isExpandedLocked)...)
	s.setLocked(ContainerSummary, token, render.SummaryCards(view.Summary)...)
	if view.Summary.HasRecord {
		s.setLocked(ContainerRecord, token, render.RecordValue(view.Summary.Record)...)
	}
}

func (s *Session) applyStatsLocked(token uint64, view models.StatsView) {
	s.setLocked(ContainerTrends, token, render.Trends(view.Trends, s.deps.Sport.CriteriaNames())...)

	charts, err := render.Charts(view)
	if err != nil {
		s.log.Errorf("build charts: %v", err)
		s.setLocked(ContainerCharts, token, render.ErrorPanel(fetchStatsFailure(err), ContainerCharts))
	} else {
		s.setLocked(ContainerCharts, token, charts...)
	}

	if view.HasRecord {
		s.setLocked(ContainerRecord, token, render.RecordValue(view.Record)...)
	}
}

func fetchStatsFailure(err error) string {
	return request{kind: fetchStats}.failureText() + ": " + err.Error()
}
