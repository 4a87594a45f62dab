package analysisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

const (
	userAgent      = "Janus/1.0 (Betting Analysis Dashboard)"
	defaultTimeout = 10 * time.Second
)

// Client implements the AnalysisSource interface for the analysis service
type Client struct {
	baseURL    string
	httpClient *http.Client
	stats      RequestStats
	mu         sync.RWMutex
}

// RequestStats counts requests issued by the client
type RequestStats struct {
	Requests int64
	Failures int64
	LastPath string
	LastAt   time.Time
}

// Ensure Client implements AnalysisSource
var _ contracts.AnalysisSource = (*Client)(nil)

// NewClient creates a new analysis service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchGames retrieves analyzed games for a date
func (c *Client) FetchGames(ctx context.Context, date string) (*models.GamesResponse, error) {
	body, err := c.doRequest(ctx, "/api/games/"+url.PathEscape(date))
	if err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}

	if err := checkEnvelope(body); err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}

	var resp models.GamesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch games: %w", &DecodeError{Err: err})
	}

	return &resp, nil
}

// FetchStats retrieves aggregate criteria stats
func (c *Client) FetchStats(ctx context.Context) (*models.StatsResponse, error) {
	body, err := c.doRequest(ctx, "/api/stats")
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	if err := checkEnvelope(body); err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}

	var resp models.StatsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("fetch stats: %w", &DecodeError{Err: err})
	}

	return &resp, nil
}

// FetchBestBets retrieves ranked recommendations for a date
func (c *Client) FetchBestBets(ctx context.Context, date string) ([]models.BestBet, error) {
	body, err := c.doRequest(ctx, "/api/best-bets/"+url.PathEscape(date))
	if err != nil {
		return nil, fmt.Errorf("fetch best bets: %w", err)
	}

	// Success is a bare array; failures come back as an object with an error field
	if err := checkEnvelope(body); err != nil {
		return nil, fmt.Errorf("fetch best bets: %w", err)
	}

	var bets []models.BestBet
	if err := json.Unmarshal(body, &bets); err != nil {
		return nil, fmt.Errorf("fetch best bets: %w", &DecodeError{Err: err})
	}

	return bets, nil
}

// GetStats returns request counters
func (c *Client) GetStats() RequestStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// doRequest performs a single HTTP request
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	c.recordRequest(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordFailure()
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.recordFailure()
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
			Body:       string(body),
		}
	}

	return body, nil
}

func (c *Client) recordRequest(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Requests++
	c.stats.LastPath = path
	c.stats.LastAt = time.Now()
}

func (c *Client) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Failures++
}

// checkEnvelope reports an application error carried in a 2xx body
func checkEnvelope(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return &DecodeError{Err: err}
	}
	if len(env.Error) == 0 || string(env.Error) == "null" {
		return nil
	}

	var msg string
	if err := json.Unmarshal(env.Error, &msg); err != nil {
		msg = string(env.Error)
	}
	if msg == "" || msg == "false" {
		return nil
	}
	return &APIError{Message: msg}
}

// statusText returns the reason phrase the server sent, falling back to the standard text
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
