package trending

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/searchcount"
)

// loadTimeout bounds the startup query
const loadTimeout = 10 * time.Second

// LoadedMsg carries the trending list, or the error that prevented loading it
type LoadedMsg struct {
	Entries []domain.TrendingEntry
	Err     error
}

// Loader reads the most searched terms once at startup
type Loader struct {
	counter searchcount.Counter
	bus     eventbus.EventBus
	limit   int
	log     zerolog.Logger
}

// NewLoader creates a trending loader
func NewLoader(counter searchcount.Counter, bus eventbus.EventBus, limit int, log zerolog.Logger) *Loader {
	if limit <= 0 {
		limit = searchcount.DefaultTrendingLimit
	}
	return &Loader{
		counter: counter,
		bus:     bus,
		limit:   limit,
		log:     log.With().Str("component", "trending").Logger(),
	}
}

// Load returns a command that queries the counter. A failure is logged and
// reported with an empty list; there is no retry.
func (l *Loader) Load(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		entries, err := l.Fetch(ctx)
		return LoadedMsg{Entries: entries, Err: err}
	}
}

// Fetch queries the counter synchronously
func (l *Loader) Fetch(ctx context.Context) ([]domain.TrendingEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	entries, err := l.counter.Trending(ctx, l.limit)
	if err != nil {
		l.log.Error().Err(err).Msg("Failed to load trending movies")
		return []domain.TrendingEntry{}, err
	}

	l.log.Info().Int("count", len(entries)).Msg("Trending movies loaded")
	if l.bus != nil {
		l.bus.Publish(domain.TrendingLoadedEvent{Count: len(entries)})
	}
	return entries, nil
}
