//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const testToken = "e2e-token"

// CatalogOption customizes the fake catalog
type CatalogOption func(*fakeCatalog)

// WithTotalPages sets the page count reported for every listing
func WithTotalPages(n int) CatalogOption {
	return func(c *fakeCatalog) { c.totalPages = n }
}

// WithFailure makes every request answer with the given status
func WithFailure(status int) CatalogOption {
	return func(c *fakeCatalog) { c.failStatus = status }
}

// WithEmptySearch makes searches return no results
func WithEmptySearch() CatalogOption {
	return func(c *fakeCatalog) { c.emptySearch = true }
}

type fakeCatalog struct {
	totalPages  int
	failStatus  int
	emptySearch bool

	mu       sync.Mutex
	requests []string
}

func (c *fakeCatalog) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.requests = append(c.requests, r.URL.RequestURI())
	c.mu.Unlock()

	if r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if c.failStatus != 0 {
		w.WriteHeader(c.failStatus)
		return
	}

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		page, _ = strconv.Atoi(p)
	}

	prefix := "Popular"
	switch r.URL.Path {
	case "/discover/movie":
	case "/search/movie":
		prefix = "Found " + r.URL.Query().Get("query")
		if c.emptySearch {
			_ = json.NewEncoder(w).Encode(map[string]any{"page": 1, "total_pages": 0, "results": []any{}})
			return
		}
	default:
		w.WriteHeader(http.StatusNotFound)
		return
	}

	results := make([]map[string]any, 0, 5)
	for i := 1; i <= 5; i++ {
		results = append(results, map[string]any{
			"id":                page*100 + i,
			"title":             fmt.Sprintf("%s p%d #%d", prefix, page, i),
			"overview":          fmt.Sprintf("Overview of movie %d on page %d.", i, page),
			"vote_average":      7.5,
			"vote_count":        1200,
			"original_language": "en",
			"release_date":      "2021-10-22",
			"poster_path":       fmt.Sprintf("/poster-%d-%d.jpg", page, i),
		})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"page":        page,
		"total_pages": c.totalPages,
		"results":     results,
	})
}

// Requests returns the request URIs seen so far
func (c *fakeCatalog) Requests() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.requests...)
}

// CreateTestWorkspace starts a fake catalog and writes a config pointing at it
func (tf *TUITestFramework) CreateTestWorkspace(options ...CatalogOption) (*fakeCatalog, error) {
	catalog := &fakeCatalog{totalPages: 20}
	for _, opt := range options {
		opt(catalog)
	}
	srv := httptest.NewServer(catalog)
	tf.t.Cleanup(srv.Close)

	workspace, err := os.MkdirTemp("", "moviegrip-e2e-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	tf.workspace = workspace

	path := filepath.Join(workspace, "config.toml")
	content := fmt.Sprintf(`version = 1

[catalog]
base_url = %q
token = %q
image_base_url = "https://img.test"

[search]
debounce = "100ms"

[log]
file = %q
level = "debug"
`, srv.URL, testToken, filepath.Join(workspace, "moviegrip.log"))
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}
	tf.config = path
	return catalog, nil
}
