// Package api provides the HTTP client for the video game catalog service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gameshelf/gameshelf/internal/config"
	"github.com/gameshelf/gameshelf/internal/constants"
	"github.com/gameshelf/gameshelf/internal/http"
	"github.com/gameshelf/gameshelf/internal/logging"
	"github.com/gameshelf/gameshelf/internal/models"
	"github.com/gameshelf/gameshelf/internal/ratelimit"
)

// retryLogger implements the retryablehttp.LeveledLogger interface,
// bridging retry noise into our structured logger.
type retryLogger struct {
	log *logging.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Error().Interface("details", keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Warn().Interface("details", keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	// Only errors and warnings are worth surfacing.
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	// Only errors and warnings are worth surfacing.
}

// apiMetrics tracks API usage statistics
type apiMetrics struct {
	sync.Mutex
	totalCalls    int64
	callsByPath   map[string]int64
	windowStart   time.Time
	callsInWindow int64
}

// Client represents the catalog API client.
type Client struct {
	httpClient *nethttp.Client
	config     *config.Config
	baseURL    string
	apiKey     string
	logger     *logging.Logger
	metrics    *apiMetrics
	limiter    *ratelimit.Limiter
}

// NewClient creates a new API client.
func NewClient(cfg *config.Config) (*Client, error) {
	// Configure HTTP client with proxy support
	httpClient, err := http.ConfigureHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to configure HTTP client: %w", err)
	}

	logger := logging.NewLogger("api")

	// Wrap with retry logic
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = httpClient
	retryClient.RetryMax = constants.APIRetryMax
	retryClient.RetryWaitMin = constants.APIRetryWaitMin
	retryClient.RetryWaitMax = constants.APIRetryWaitMax
	retryClient.Logger = &retryLogger{log: logger}

	return &Client{
		httpClient: retryClient.StandardClient(),
		config:     cfg,
		baseURL:    strings.TrimSuffix(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
		limiter:    ratelimit.NewCatalogLimiter(),
		metrics: &apiMetrics{
			callsByPath: make(map[string]int64),
			windowStart: time.Now(),
		},
	}, nil
}

// GetConfig returns the configuration used by this API client.
func (c *Client) GetConfig() *config.Config {
	return c.config
}

// doRequest performs an HTTP request with authentication and metrics tracking.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*nethttp.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}
	c.trackCall(path)

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", "Token "+c.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Err(err).Msg("API call failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// trackCall records per-path call counts and logs a usage summary once the
// 30 second window elapses.
func (c *Client) trackCall(path string) {
	c.metrics.Lock()
	defer c.metrics.Unlock()

	c.metrics.totalCalls++
	c.metrics.callsByPath[path]++
	c.metrics.callsInWindow++

	if elapsed := time.Since(c.metrics.windowStart); elapsed >= 30*time.Second {
		reqPerSec := float64(c.metrics.callsInWindow) / elapsed.Seconds()
		c.logger.Debug().
			Float64("req_per_sec", reqPerSec).
			Int64("total_calls", c.metrics.totalCalls).
			Msg("API usage")

		c.metrics.callsInWindow = 0
		c.metrics.windowStart = time.Now()
	}
}

// Query fetches one page of catalog records. An empty search term means no
// filter; sortBy/sortDescending are always sent since the controller always
// carries a sort field.
func (c *Client) Query(ctx context.Context, search string, sortBy string, sortDescending bool, pageIndex, pageSize int) (*models.Page, error) {
	params := url.Values{}
	params.Set("pageIndex", strconv.Itoa(pageIndex))
	params.Set("pageSize", strconv.Itoa(pageSize))
	if search != "" {
		params.Set("searchTerm", search)
	}
	if sortBy != "" {
		params.Set("sortBy", sortBy)
		params.Set("sortDescending", strconv.FormatBool(sortDescending))
	}

	resp, err := c.doRequest(ctx, "GET", "/Videogames/GetVideoGames", params, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return nil, responseError("query video games", resp)
	}

	var page models.Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}

	return &page, nil
}

// GetByID fetches a single catalog record.
func (c *Client) GetByID(ctx context.Context, id int64) (*models.VideoGame, error) {
	path := fmt.Sprintf("/Videogames/GetVideoGame/%d", id)

	resp, err := c.doRequest(ctx, "GET", path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == nethttp.StatusNotFound {
		return nil, fmt.Errorf("get video game %d: %w", id, ErrNotFound)
	}
	if resp.StatusCode != nethttp.StatusOK {
		return nil, responseError("get video game", resp)
	}

	var game models.VideoGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("failed to decode video game: %w", err)
	}

	return &game, nil
}

// Update submits changed fields for an existing record.
func (c *Client) Update(ctx context.Context, upd models.VideoGameUpdate) error {
	path := fmt.Sprintf("/Videogames/UpdateVideoGame/%d", upd.ID)

	resp, err := c.doRequest(ctx, "PUT", path, nil, upd)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == nethttp.StatusNotFound {
		return fmt.Errorf("update video game %d: %w", upd.ID, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError("update video game", resp)
	}

	return nil
}

// responseError builds an error from a non-success response, including a
// bounded amount of body text for diagnosis.
func responseError(op string, resp *nethttp.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%s failed: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(body)))
}
