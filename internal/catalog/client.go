package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"moviezone/internal/domain"
)

// Client is an HTTP client for the movie catalog API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new catalog client. Unlike the *arr clients it does not
// probe the connection: the catalog is often asleep and the first real
// request doubles as the probe.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("%w: catalog URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid catalog URL %q", ErrInvalidConfig, baseURL)
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized catalog base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns the listing for a category key
func (c *Client) List(ctx context.Context, categoryKey string) ([]domain.ResultItem, error) {
	endpoint := "/api/trending"
	if categoryKey != domain.TrendingKey {
		endpoint = "/api/category/" + url.PathEscape(categoryKey)
	}
	return c.getResults(ctx, endpoint, nil)
}

// Search returns items matching a free-text query
func (c *Client) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	params := url.Values{}
	params.Set("q", query)
	return c.getResults(ctx, "/api/search", params)
}

// Detail returns the extended record for one movie
func (c *Client) Detail(ctx context.Context, id int) (domain.Detail, error) {
	body, err := c.doRequest(ctx, "/api/movie/"+strconv.Itoa(id), nil)
	if err != nil {
		return domain.Detail{}, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.Detail{}, fmt.Errorf("%w: movie %d: %v", ErrMalformedResponse, id, err)
	}
	return resp.toDomain(), nil
}

func (c *Client) getResults(ctx context.Context, endpoint string, params url.Values) ([]domain.ResultItem, error) {
	body, err := c.doRequest(ctx, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", endpoint, err)
	}

	var resp resultsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}
	if resp.Results == nil {
		return []domain.ResultItem{}, nil
	}
	return resp.Results, nil
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("request_id", requestID).Str("endpoint", endpoint).Msg("Catalog request failed")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("Catalog request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       string(body),
		}
	}
	return body, nil
}
