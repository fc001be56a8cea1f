// Package http provides the HTTP surfaces of papersum: a client for the
// Semantic Scholar paper search API and an HTTP server for summarizing,
// classifying and searching.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/papersum"
	"golang.org/x/time/rate"
)

const (
	// DefaultSearchURL is the Semantic Scholar Graph API paper search endpoint.
	DefaultSearchURL = "https://api.semanticscholar.org/graph/v1/paper/search"

	// DefaultSearchTimeout is the default timeout for search requests.
	DefaultSearchTimeout = 10 * time.Second

	// DefaultSearchRate is the default number of requests per second; the
	// public API throttles unauthenticated clients aggressively.
	DefaultSearchRate = 1.0

	// SearchLimit is the number of papers requested per query.
	SearchLimit = 5
)

// Ensure SearchClient implements papersum.PaperSearcher at compile time.
var _ papersum.PaperSearcher = (*SearchClient)(nil)

// SearchClient finds papers with the Semantic Scholar Graph API.
// Requests are spaced by a token bucket shared by all callers.
type SearchClient struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	apiKey  string
	delays  []time.Duration
}

// SearchOption configures a SearchClient.
type SearchOption func(*SearchClient)

// WithBaseURL sets the search endpoint.
// Defaults to DefaultSearchURL if not specified.
func WithBaseURL(u string) SearchOption {
	return func(c *SearchClient) {
		c.baseURL = u
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultSearchTimeout if not specified.
func WithTimeout(d time.Duration) SearchOption {
	return func(c *SearchClient) {
		c.timeout = d
	}
}

// WithRateLimit sets the maximum requests per second. A non-positive
// value disables rate limiting.
// Defaults to DefaultSearchRate if not specified.
func WithRateLimit(rps float64) SearchOption {
	return func(c *SearchClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithAPIKey sets the key sent in the x-api-key header.
func WithAPIKey(key string) SearchOption {
	return func(c *SearchClient) {
		c.apiKey = key
	}
}

// DefaultRetryDelays returns the backoff delays for search retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// WithRetryDelays sets the waits between attempts after a throttled or
// failed response. An empty list disables retries.
// Defaults to DefaultRetryDelays if not specified.
func WithRetryDelays(delays []time.Duration) SearchOption {
	return func(c *SearchClient) {
		c.delays = delays
	}
}

// WithHTTPClient sets the underlying HTTP client. Its timeout is
// overridden by WithTimeout.
func WithHTTPClient(client *http.Client) SearchOption {
	return func(c *SearchClient) {
		c.client = client
	}
}

// NewSearchClient creates a new SearchClient.
func NewSearchClient(opts ...SearchOption) *SearchClient {
	c := &SearchClient{
		baseURL: DefaultSearchURL,
		timeout: DefaultSearchTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultSearchRate), 1),
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	client := &http.Client{}
	if c.client != nil {
		*client = *c.client
	}
	client.Timeout = c.timeout
	c.client = client

	return c
}

// searchResponse is the subset of the API response that is decoded.
type searchResponse struct {
	Data []papersum.Paper `json:"data"`
}

// Search returns up to SearchLimit papers matching query. Responses with
// status 429 or 5xx are retried after each of the configured delays.
func (c *SearchClient) Search(ctx context.Context, query string) ([]papersum.Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, papersum.Errorf(papersum.EINVALID, "search query required")
	}

	var lastErr error
	for attempt := 0; attempt <= len(c.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.delays[attempt-1]):
			}
		}

		papers, err := c.search(ctx, query)
		if err == nil {
			return papers, nil
		}
		lastErr = err

		var se *statusError
		if !errors.As(err, &se) || !se.retryable() {
			break
		}
	}
	return nil, lastErr
}

func (c *SearchClient) search(ctx context.Context, query string) ([]papersum.Paper, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(SearchLimit))
	params.Set("fields", "title,url")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(body))}
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode paper search response: %w", err)
	}
	if out.Data == nil {
		return []papersum.Paper{}, nil
	}
	return out.Data, nil
}

// statusError is a non-200 response from the search API.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d from paper search: %s", e.code, e.body)
}

func (e *statusError) retryable() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}
