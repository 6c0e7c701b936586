package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"moviegrip/internal/config"
	"moviegrip/internal/domain"
)

// StatusError is returned when the catalog answers with a non-200 status
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d", e.StatusCode)
}

// Client talks to a TMDb compatible movie catalog
type Client struct {
	baseURL      string
	imageBaseURL string
	token        string
	httpClient   *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a catalog client from configuration
func NewClient(cfg config.CatalogConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
		token:        cfg.Token,
		httpClient:   &http.Client{Timeout: cfg.Timeout.Duration},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Discover fetches a page of movies sorted by descending popularity
func (c *Client) Discover(ctx context.Context, page int) (*domain.PageResult, error) {
	return c.get(ctx, DiscoverURL(c.baseURL, page))
}

// Search fetches movies matching query
func (c *Client) Search(ctx context.Context, query string, page int) (*domain.PageResult, error) {
	return c.get(ctx, SearchURL(c.baseURL, query, page))
}

// DiscoverURL builds {base}/discover/movie?sort_by=popularity.desc&page={n}
func DiscoverURL(base string, page int) string {
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf("%s/discover/movie?sort_by=popularity.desc&page=%d", base, page)
}

// SearchURL builds {base}/search/movie?query={escaped}. The page is only
// added past the first one.
func SearchURL(base, query string, page int) string {
	u := fmt.Sprintf("%s/search/movie?query=%s", base, escapeQuery(query))
	if page > 1 {
		u += "&page=" + strconv.Itoa(page)
	}
	return u
}

// escapeQuery escapes a query value with spaces as %20 rather than '+'
func escapeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

func (c *Client) get(ctx context.Context, endpoint string) (*domain.PageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	var result domain.PageResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if result.Results == nil {
		result.Results = []domain.Movie{}
	}

	return &result, nil
}

// PosterURL returns the image URL for a poster path, or "" when there is none
func (c *Client) PosterURL(path, size string) string {
	if path == "" {
		return ""
	}
	if size == "" {
		size = "original"
	}
	return fmt.Sprintf("%s/%s%s", c.imageBaseURL, size, path)
}
