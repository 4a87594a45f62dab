package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/Janus/internal/dashboard"
	"github.com/XavierBriggs/Janus/internal/handlers"
	"github.com/XavierBriggs/Janus/internal/hub"
	"github.com/XavierBriggs/Janus/internal/navigator"
	"github.com/XavierBriggs/Janus/internal/render"
	"github.com/XavierBriggs/Janus/internal/session"
	"github.com/XavierBriggs/Janus/pkg/models"
	"github.com/XavierBriggs/Janus/pkg/testutil"
	"github.com/XavierBriggs/Janus/sports/baseball_mlb"
)

type fakeSource struct {
	mu       sync.Mutex
	gamesErr error
}

func (f *fakeSource) FetchGames(ctx context.Context, date string) (*models.GamesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gamesErr != nil {
		return nil, f.gamesErr
	}
	game := testutil.NewTestGame("g-"+date, "Mets", "Braves", 0.62)
	game.BetOnHome = true
	game.AnyMatch = true
	return &models.GamesResponse{Games: []models.Game{game}}, nil
}

func (f *fakeSource) FetchStats(ctx context.Context) (*models.StatsResponse, error) {
	return &models.StatsResponse{}, nil
}

func (f *fakeSource) FetchBestBets(ctx context.Context, date string) ([]models.BestBet, error) {
	return nil, nil
}

func (f *fakeSource) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gamesErr = err
}

type testEnv struct {
	source  *fakeSource
	manager *dashboard.Manager
	router  http.Handler
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	return setupWithOrigins(t, nil)
}

func setupWithOrigins(t *testing.T, origins []string) *testEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	h := hub.NewHub(nil)
	go h.Run(ctx)

	source := &fakeSource{}
	manager := dashboard.NewManager(dashboard.Deps{
		Source:    source,
		Sport:     baseball_mlb.NewModule(nil),
		Publisher: h,
		Location:  time.UTC,
		Now: func() time.Time {
			return time.Date(2024, 4, 5, 15, 30, 0, 0, time.UTC)
		},
	}, session.NewMemoryStore(time.Hour), time.Hour)

	t.Cleanup(func() {
		manager.Close()
		cancel()
	})

	handler := handlers.NewHandler(ctx, handlers.Options{
		Manager:        manager,
		Hub:            h,
		AllowedOrigins: origins,
		SessionTTL:     time.Hour,
	})

	return &testEnv{source: source, manager: manager, router: handler.Routes()}
}

func (e *testEnv) do(t *testing.T, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// open loads the page and waits for the initial fetches to settle
func (e *testEnv) open(t *testing.T) *http.Cookie {
	t.Helper()
	rec := e.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	s, ok := e.manager.Get(cookie.Value)
	require.True(t, ok)
	s.Wait()
	return cookie
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == handlers.SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestIndex_IssuesSessionAndRendersPage(t *testing.T) {
	env := setup(t)

	rec := env.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	body := rec.Body.String()
	assert.Contains(t, body, `id="`+render.DateElement+`"`)
	assert.Contains(t, body, "April 5, 2024")
	assert.Equal(t, 1, env.manager.Count())

	// Same cookie, same session
	rec = env.do(t, http.MethodGet, "/", cookie)
	assert.Equal(t, cookie.Value, sessionCookie(t, rec).Value)
	assert.Equal(t, 1, env.manager.Count())
}

func TestIndex_ReplacesMalformedCookie(t *testing.T) {
	env := setup(t)

	rec := env.do(t, http.MethodGet, "/", &http.Cookie{Name: handlers.SessionCookie, Value: "not-a-uuid"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "not-a-uuid", sessionCookie(t, rec).Value)
}

func TestDateNavigation(t *testing.T) {
	env := setup(t)
	cookie := env.open(t)

	rec := env.do(t, http.MethodPost, "/ui/date/next", cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, navigator.FutureDateNotice, errResp.Message)

	rec = env.do(t, http.MethodPost, "/ui/date/prev", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var date handlers.DateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&date))
	assert.Equal(t, "2024-04-04", date.Date)
	assert.Equal(t, "April 4, 2024", date.Display)

	rec = env.do(t, http.MethodPost, "/ui/date/next", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&date))
	assert.Equal(t, "2024-04-05", date.Date)
}

func TestActivateTab(t *testing.T) {
	env := setup(t)
	cookie := env.open(t)

	rec := env.do(t, http.MethodPost, "/ui/tabs/best-bets", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var tab handlers.TabResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tab))
	assert.True(t, tab.OK)
	assert.Equal(t, "best-bets", tab.ScrollTo)

	rec = env.do(t, http.MethodPost, "/ui/tabs/standings", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleDetail(t *testing.T) {
	env := setup(t)
	cookie := env.open(t)

	var toggle handlers.ToggleResponse
	rec := env.do(t, http.MethodPost, "/ui/games/g-2024-04-05/toggle", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&toggle))
	assert.True(t, toggle.Expanded)

	rec = env.do(t, http.MethodPost, "/ui/games/g-2024-04-05/toggle", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&toggle))
	assert.False(t, toggle.Expanded)

	rec = env.do(t, http.MethodPost, "/ui/games/missing/toggle", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRetryAndContainer(t *testing.T) {
	env := setup(t)
	env.source.fail(errors.New("connection refused"))
	cookie := env.open(t)

	rec := env.do(t, http.MethodGet, "/ui/containers/games", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load games")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	env.source.fail(nil)
	rec = env.do(t, http.MethodPost, "/ui/containers/games/retry", cookie)
	require.Equal(t, http.StatusAccepted, rec.Code)

	s, ok := env.manager.Get(cookie.Value)
	require.True(t, ok)
	s.Wait()

	rec = env.do(t, http.MethodGet, "/ui/containers/games", cookie)
	assert.Contains(t, rec.Body.String(), "Braves")

	rec = env.do(t, http.MethodPost, "/ui/containers/date/retry", cookie)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/ui/containers/sidebar/retry", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/ui/containers/sidebar", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	env := setup(t)
	env.open(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "janus", health["service"])
	assert.EqualValues(t, 1, health["sessions"])
	assert.Contains(t, health, "hub")

	// Health checks do not create sessions
	assert.Empty(t, rec.Result().Cookies())
}

func TestWebSocket_ResyncsOnConnect(t *testing.T) {
	env := setup(t)
	cookie := env.open(t)

	srv := httptest.NewServer(env.router)
	defer srv.Close()

	header := http.Header{}
	header.Set("Cookie", cookie.Name+"="+cookie.Value)
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
	require.NoError(t, err)
	defer conn.Close()

	targets := make(map[string]bool)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for len(targets) < 8 {
		var msg struct {
			Type    string       `json:"type"`
			Payload models.Patch `json:"payload"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, models.MessageTypeContainerUpdate, msg.Type)
		targets[msg.Payload.Target] = true
	}

	assert.True(t, targets[render.GamesElement])
	assert.True(t, targets[render.DateElement])
}

func TestWebSocket_OriginCheck(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    int
	}{
		{"same-origin default rejects foreign", nil, "http://evil.test", http.StatusForbidden},
		{"wildcard does not open sockets", []string{"*"}, "http://evil.test", http.StatusForbidden},
		{"unlisted origin", []string{"http://dash.test"}, "http://evil.test", http.StatusForbidden},
		{"listed origin", []string{"http://dash.test"}, "http://dash.test", http.StatusSwitchingProtocols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupWithOrigins(t, tt.origins)
			srv := httptest.NewServer(env.router)
			defer srv.Close()

			header := http.Header{}
			header.Set("Origin", tt.origin)
			conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
			if conn != nil {
				conn.Close()
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want == http.StatusForbidden {
				assert.Error(t, err)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		wantOrigin      bool
		wantCredentials string
	}{
		{"same-origin default", nil, false, ""},
		{"wildcard without credentials", []string{"*"}, true, ""},
		{"listed origin with credentials", []string{"http://evil.test"}, true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupWithOrigins(t, tt.origins)

			req := httptest.NewRequest(http.MethodOptions, "/ui/date/prev", nil)
			req.Header.Set("Origin", "http://evil.test")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			if tt.wantOrigin {
				assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
			assert.Equal(t, tt.wantCredentials, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}
