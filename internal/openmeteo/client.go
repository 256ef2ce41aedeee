package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const userAgent = "weather-now/1.0"

// Client talks to the Open-Meteo geocoding and forecast endpoints.
type Client struct {
	geocodingURL string
	forecastURL  string
	httpClient   *http.Client
	limiter      *rate.Limiter
	runID        string
	logger       *slog.Logger
}

// Options configures a Client. Zero values fall back to sensible defaults.
type Options struct {
	GeocodingURL string
	ForecastURL  string
	Timeout      time.Duration
	RateLimit    float64 // requests per second
	RateBurst    int
	Logger       *slog.Logger
}

// NewClient creates a client. Every request it issues carries the same run id
// so both calls of one invocation can be correlated in the logs.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	runID := uuid.NewString()

	return &Client{
		geocodingURL: opts.GeocodingURL,
		forecastURL:  opts.ForecastURL,
		httpClient:   &http.Client{Timeout: opts.Timeout},
		limiter:      rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst),
		runID:        runID,
		logger:       logger.With("run_id", runID),
	}
}

// RunID returns the id sent as X-Request-Id on every request.
func (c *Client) RunID() string { return c.runID }

// doGet waits for the limiter, issues the request and rejects non-2xx
// responses. The caller owns the returned body.
func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", ErrNetwork, err)
	}

	reqURL := endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", c.runID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "url", reqURL, "err", err)
		return nil, fmt.Errorf("%w: request failed: %v", ErrNetwork, err)
	}
	c.logger.Debug("request done", "url", reqURL, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: HTTP %s for %s", ErrNetwork, resp.Status, endpoint)
	}
	return resp, nil
}
