package searchcount

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"moviegrip/internal/domain"
)

// MemoryStore is an in-memory implementation of Counter
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*domain.TrendingEntry
	now     func() time.Time
}

// NewMemoryStore creates a new memory-based search-count store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*domain.TrendingEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Increment(ctx context.Context, query string, top domain.Movie) error {
	term, err := normalizeQuery(query)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[term]
	if !ok {
		e = &domain.TrendingEntry{ID: uuid.NewString(), SearchTerm: term}
		s.entries[term] = e
	}
	e.Count++
	e.MovieID = top.ID
	e.Title = top.Title
	e.PosterPath = top.PosterPath
	e.UpdatedAt = s.now().UTC()
	return nil
}

func (s *MemoryStore) Trending(ctx context.Context, limit int) ([]domain.TrendingEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	// Copy so callers cannot mutate stored entries
	result := make([]domain.TrendingEntry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, *e)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	if limit = normalizeLimit(limit); len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
