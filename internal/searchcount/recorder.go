package searchcount

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
)

// DefaultRecordTimeout bounds a single background increment
const DefaultRecordTimeout = 5 * time.Second

// Recorder performs best-effort search-count increments requested over the
// event bus. Failures are logged and never reach the user.
type Recorder struct {
	counter Counter
	bus     eventbus.EventBus
	timeout time.Duration
	log     zerolog.Logger
	unsub   func()
}

// NewRecorder creates a recorder and subscribes it to the bus
func NewRecorder(counter Counter, bus eventbus.EventBus, log zerolog.Logger) *Recorder {
	r := &Recorder{
		counter: counter,
		bus:     bus,
		timeout: DefaultRecordTimeout,
		log:     log.With().Str("component", "recorder").Logger(),
	}
	r.unsub = bus.Subscribe(eventbus.EventSearchRecordRequested, r.handle)
	return r
}

// Stop unsubscribes the recorder
func (r *Recorder) Stop() {
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
}

func (r *Recorder) handle(e eventbus.DomainEvent) {
	ev, ok := e.(domain.SearchRecordRequestedEvent)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.counter.Increment(ctx, ev.Query, ev.Movie); err != nil {
		r.log.Warn().Err(err).Str("query", ev.Query).Msg("Failed to record search")
		return
	}

	r.log.Debug().Str("query", ev.Query).Int("movie_id", ev.Movie.ID).Msg("Search recorded")
	r.bus.Publish(domain.SearchRecordedEvent{Query: ev.Query})
}
