// Package browse drives catalog fetches for the result list: it picks the
// endpoint for the committed search term, tracks loading and error state,
// drops responses that were superseded, and requests search-count
// enrichment after successful searches.
package browse

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"moviegrip/internal/catalog"
	"moviegrip/internal/config"
	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/pagination"
)

// User-visible failure messages
const (
	MsgFetchFailed = "Failed to fetch movies"
	MsgTryLater    = "Error fetching movies. Please try again later."
)

// Catalog is the part of the catalog client the orchestrator needs
type Catalog interface {
	Discover(ctx context.Context, page int) (*domain.PageResult, error)
	Search(ctx context.Context, query string, page int) (*domain.PageResult, error)
}

// State is the result page state shown by the UI
type State struct {
	Query      string
	Results    []domain.Movie
	Page       int
	TotalPages int
	Loading    bool
	Err        string
}

// ResultMsg carries the outcome of one fetch back into the update loop
type ResultMsg struct {
	Seq    uint64
	Query  string
	Page   int
	Result *domain.PageResult
	Err    error
}

// Orchestrator owns State. It is not safe for concurrent use; call it from
// the bubbletea update loop only.
type Orchestrator struct {
	catalog Catalog
	bus     eventbus.EventBus
	policy  string
	log     zerolog.Logger

	state  State
	seq    uint64
	cancel context.CancelFunc
	root   context.Context
	stop   context.CancelFunc
	closed bool
}

// New creates an orchestrator. policy is one of the config.Policy* values.
func New(cat Catalog, bus eventbus.EventBus, policy string, log zerolog.Logger) *Orchestrator {
	root, stop := context.WithCancel(context.Background())
	if policy == "" {
		policy = config.PolicySplit
	}
	return &Orchestrator{
		catalog: cat,
		bus:     bus,
		policy:  policy,
		log:     log.With().Str("component", "browse").Logger(),
		state:   State{Results: []domain.Movie{}, Page: 1, TotalPages: 1},
		root:    root,
		stop:    stop,
	}
}

// State returns a copy of the current state
func (o *Orchestrator) State() State {
	s := o.state
	s.Results = make([]domain.Movie, len(o.state.Results))
	copy(s.Results, o.state.Results)
	return s
}

// Seq returns the sequence number of the latest issued fetch
func (o *Orchestrator) Seq() uint64 {
	return o.seq
}

// Fetch starts loading page of query. Loading and error state change right
// away; the returned command performs the request and yields a ResultMsg.
// Any fetch still in flight is cancelled and its result will be ignored.
func (o *Orchestrator) Fetch(query string, page int) tea.Cmd {
	if o.closed {
		return nil
	}
	if page < 1 {
		page = 1
	}

	if o.cancel != nil {
		o.cancel()
	}
	ctx, cancel := context.WithCancel(o.root)
	o.cancel = cancel

	o.seq++
	seq := o.seq
	o.state.Loading = true
	o.state.Err = ""
	o.state.Query = query

	mode := domain.ModeFor(query)
	o.log.Debug().Uint64("seq", seq).Str("mode", mode.String()).Str("query", query).Int("page", page).Msg("Fetch started")
	o.publish(domain.FetchStartedEvent{Seq: seq, Mode: mode, Query: query, Page: page})

	cat := o.catalog
	return func() tea.Msg {
		var (
			res *domain.PageResult
			err error
		)
		if mode == domain.ModeSearch {
			res, err = cat.Search(ctx, query, page)
		} else {
			res, err = cat.Discover(ctx, page)
		}
		return ResultMsg{Seq: seq, Query: query, Page: page, Result: res, Err: err}
	}
}

// Apply folds a fetch result into State. It returns false when the result
// is stale (a newer fetch was issued) or the orchestrator is closed.
func (o *Orchestrator) Apply(msg ResultMsg) bool {
	if o.closed || msg.Seq != o.seq {
		o.log.Debug().Uint64("seq", msg.Seq).Uint64("latest", o.seq).Msg("Discarding stale result")
		return false
	}
	defer func() { o.state.Loading = false }()

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}

	if msg.Err != nil {
		o.applyFailure(msg)
		return true
	}

	res := msg.Result
	if res == nil {
		res = &domain.PageResult{}
	}
	results := res.Results
	if results == nil {
		results = []domain.Movie{}
	}
	total := max(res.TotalPages, 1)

	o.state.Results = results
	o.state.TotalPages = total
	o.state.Page = pagination.Clamp(res.Page, total)

	o.log.Info().Uint64("seq", msg.Seq).Str("query", msg.Query).Int("page", o.state.Page).
		Int("total_pages", total).Int("results", len(results)).Msg("Fetch completed")
	o.publish(domain.FetchCompletedEvent{
		Seq: msg.Seq, Query: msg.Query, Page: o.state.Page, TotalPages: total, Count: len(results),
	})

	if msg.Query != "" && len(results) > 0 {
		o.publish(domain.SearchRecordRequestedEvent{Query: msg.Query, Movie: results[0]})
	}
	return true
}

func (o *Orchestrator) applyFailure(msg ResultMsg) {
	var statusErr *catalog.StatusError
	badStatus := errors.As(msg.Err, &statusErr)

	if badStatus {
		o.state.Err = MsgFetchFailed
	} else {
		o.state.Err = MsgTryLater
	}

	var drop bool
	switch o.policy {
	case config.PolicyClear:
		drop = true
	case config.PolicyKeep:
		drop = false
	default:
		drop = badStatus
	}
	if drop {
		o.state.Results = []domain.Movie{}
	}

	o.log.Warn().Err(msg.Err).Uint64("seq", msg.Seq).Str("query", msg.Query).Int("page", msg.Page).
		Bool("results_cleared", drop).Msg("Fetch failed")
	o.publish(domain.FetchFailedEvent{Seq: msg.Seq, Query: msg.Query, Page: msg.Page, Err: msg.Err})
}

// Close cancels in-flight requests; later results are ignored
func (o *Orchestrator) Close() {
	if o.closed {
		return
	}
	o.closed = true
	o.stop()
	o.state.Loading = false
}

func (o *Orchestrator) publish(e domain.DomainEvent) {
	if o.bus != nil {
		o.bus.Publish(e)
	}
}
