// Package searchcount records how often queries are searched and serves the
// most searched ones as the trending list.
package searchcount

import (
	"context"
	"errors"
	"strings"

	"moviegrip/internal/domain"
)

// DefaultTrendingLimit is how many trending entries are shown
const DefaultTrendingLimit = 5

// ErrEmptyQuery is returned when incrementing a blank query
var ErrEmptyQuery = errors.New("search term is empty")

// Counter increments search counts and lists the most searched terms
type Counter interface {
	// Increment bumps the count for query and remembers top as its best result
	Increment(ctx context.Context, query string, top domain.Movie) error
	// Trending returns up to limit entries ordered by count, most recent first on ties
	Trending(ctx context.Context, limit int) ([]domain.TrendingEntry, error)
	Close() error
}

func normalizeQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return q, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultTrendingLimit
	}
	return limit
}
