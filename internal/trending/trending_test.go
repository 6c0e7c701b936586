package trending

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviegrip/internal/domain"
	"moviegrip/internal/searchcount"
)

type brokenCounter struct {
	*searchcount.MemoryStore
}

func (brokenCounter) Trending(context.Context, int) ([]domain.TrendingEntry, error) {
	return nil, errors.New("database is locked")
}

func TestLoadReturnsTopEntries(t *testing.T) {
	store := searchcount.NewMemoryStore()
	ctx := context.Background()
	for i, q := range []string{"a", "b", "b", "c", "c", "c"} {
		require.NoError(t, store.Increment(ctx, q, domain.Movie{ID: i + 1, Title: q}))
	}

	msg, ok := NewLoader(store, nil, 2, zerolog.Nop()).Load(ctx)().(LoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	require.Len(t, msg.Entries, 2)
	assert.Equal(t, "c", msg.Entries[0].SearchTerm)
	assert.Equal(t, "b", msg.Entries[1].SearchTerm)
}

func TestLoadFailureYieldsEmptyList(t *testing.T) {
	l := NewLoader(brokenCounter{searchcount.NewMemoryStore()}, nil, 5, zerolog.Nop())

	msg := l.Load(context.Background())().(LoadedMsg)
	assert.Error(t, msg.Err)
	assert.NotNil(t, msg.Entries)
	assert.Empty(t, msg.Entries)
}

func TestDefaultLimit(t *testing.T) {
	l := NewLoader(searchcount.NewMemoryStore(), nil, 0, zerolog.Nop())
	assert.Equal(t, searchcount.DefaultTrendingLimit, l.limit)
}
