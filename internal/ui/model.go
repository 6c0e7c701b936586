package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"moviegrip/internal/browse"
	"moviegrip/internal/config"
	"moviegrip/internal/debounce"
	"moviegrip/internal/domain"
	"moviegrip/internal/eventbus"
	"moviegrip/internal/pagination"
	"moviegrip/internal/searchcount"
	"moviegrip/internal/trending"
	"moviegrip/internal/ui/input"
	inputtypes "moviegrip/internal/ui/input/types"
	"moviegrip/internal/ui/state"
	"moviegrip/internal/ui/views"
)

// statusTimeout is how long a status bar message stays up
const statusTimeout = 3 * time.Second

// Catalog is the movie catalog as seen by the UI
type Catalog interface {
	browse.Catalog
	PosterURL(path, size string) string
}

// Deps are the collaborators the model drives
type Deps struct {
	Catalog   Catalog
	Counter   searchcount.Counter // nil disables the trending strip
	Bus       eventbus.EventBus
	Log       zerolog.Logger
	Pager     Pager // defaults to the ov pager
	Debouncer *debounce.Debouncer
	ShowReady bool // print the ready marker for terminal drivers
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // UI-only state
	log    zerolog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode
	showReady   bool

	debouncer    *debounce.Debouncer
	browser      *browse.Orchestrator
	trending     *trending.Loader
	catalog      Catalog
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        Pager

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, deps Deps) *Model {
	ctx, cancel := context.WithCancel(context.Background())

	log := deps.Log.With().Str("component", "ui").Logger()

	debouncer := deps.Debouncer
	if debouncer == nil {
		debouncer = debounce.New(cfg.Search.Debounce.Duration)
	}

	pager := deps.Pager
	if pager == nil {
		pager = NewOvPager()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	m := &Model{
		bus:          deps.Bus,
		config:       cfg,
		state:        state.NewAppState(),
		log:          log,
		help:         help.New(),
		spinner:      sp,
		showReady:    deps.ShowReady,
		debouncer:    debouncer,
		browser:      browse.New(deps.Catalog, deps.Bus, cfg.Search.FailurePolicy, deps.Log),
		catalog:      deps.Catalog,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        pager,
		ctx:          ctx,
		cancel:       cancel,
	}

	if deps.Counter != nil && cfg.UI.ShowTrending {
		m.trending = trending.NewLoader(deps.Counter, deps.Bus, cfg.Trending.Limit, deps.Log)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	if op, ok := m.pager.(*OvPager); ok {
		op.SetProgram(p)
	}
}

// Init starts the first discover fetch and the trending load
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.fetch(m.debouncer.Committed(), 1)}
	if m.trending != nil {
		cmds = append(cmds, m.trending.Load(m.ctx))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case debounce.Msg:
		term, ok := m.debouncer.Settle(msg)
		if !ok {
			return m, nil
		}
		m.log.Debug().Str("query", term).Msg("Search term committed")
		if m.bus != nil {
			m.bus.Publish(domain.SearchCommittedEvent{Query: term})
		}
		return m, m.fetch(term, 1)

	case browse.ResultMsg:
		if m.browser.Apply(msg) {
			m.state.ResetSelection()
			m.state.ClampSelection(len(m.browser.State().Results))
		}
		return m, nil

	case trending.LoadedMsg:
		// Failures were logged by the loader; the strip stays empty
		m.state.SetTrending(msg.Entries)
		m.updateViewportHeight()
		return m, nil

	case spinner.TickMsg:
		if !m.browser.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.InDetail = true
		return m, nil

	case detailPagerMsg:
		m.inPagerMode = false
		m.state.InDetail = false
		if msg.err != nil {
			m.log.Error().Err(msg.err).Int("movie_id", msg.movieID).Msg("Detail pager failed")
			return m, m.setStatus("Could not open movie details")
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	st := m.browser.State()
	m.help.ShowAll = m.state.ShowHelp

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		SearchBox:      m.inputHandler.TextInput().View(),
		SearchFocused:  m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Query:          m.debouncer.Committed(),
		ShowTrending:   m.config.UI.ShowTrending,
		Trending:       m.state.Trending,
		Results:        st.Results,
		SelectedIndex:  -1,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Page:           st.Page,
		TotalPages:     st.TotalPages,
		Loading:        st.Loading,
		Spinner:        m.spinner.View(),
		Err:            st.Err,
		StatusMessage:  m.state.StatusMessage,
		HelpView:       m.help.View(inputtypes.Keys),
		ShowReady:      m.showReady,
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeBrowse && !st.Loading {
		vs.SelectedIndex = m.state.SelectedIndex
	}

	return m.renderer.Render(vs)
}

// Close cancels outstanding work. The model is unusable afterwards.
func (m *Model) Close() {
	m.cancel()
	m.browser.Close()
}

// processAction applies one input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.state.SearchTerm = a.Text
		return m.debouncer.Trigger(a.Text)

	case inputtypes.NavigateAction:
		total := m.inputContext().TotalItems()
		switch a.Direction {
		case "up":
			m.state.MoveSelection(-1, total)
		case "down":
			m.state.MoveSelection(1, total)
		case "pageup":
			m.state.MoveSelection(-m.state.ViewportHeight, total)
		case "pagedown":
			m.state.MoveSelection(m.state.ViewportHeight, total)
		case "top":
			m.state.ResetSelection()
		case "bottom":
			m.state.SelectLast(total)
		}
		return nil

	case inputtypes.PageAction:
		return m.changePage(a)

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeBrowse {
			m.state.ClampSelection(m.inputContext().TotalItems())
		}
		return nil

	case inputtypes.OpenDetailAction:
		st := m.browser.State()
		if st.Loading || st.Err != "" || m.state.SelectedIndex >= len(st.Results) {
			return nil
		}
		return m.openDetail(st.Results[m.state.SelectedIndex])

	case inputtypes.RetryAction:
		st := m.browser.State()
		return m.fetch(m.debouncer.Committed(), st.Page)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.updateViewportHeight()
		return nil

	case inputtypes.QuitAction:
		m.log.Info().Bool("force", a.Force).Msg("Quit requested")
		m.Close()
		return tea.Quit
	}
	return nil
}

// changePage fetches another page of the committed search term
func (m *Model) changePage(a inputtypes.PageAction) tea.Cmd {
	st := m.browser.State()

	target := st.Page
	switch a.Target {
	case inputtypes.PagePrev:
		if !pagination.HasPrev(st.Page) {
			return nil
		}
		target = st.Page - 1
	case inputtypes.PageNext:
		if !pagination.HasNext(st.Page, st.TotalPages) {
			return nil
		}
		target = st.Page + 1
	case inputtypes.PageFirst:
		target = 1
	case inputtypes.PageLast:
		target = st.TotalPages
	case inputtypes.PageExact:
		target = a.Page
	}
	target = pagination.Clamp(target, st.TotalPages)

	if target == st.Page && a.Target != inputtypes.PageExact && st.Err == "" {
		return nil
	}
	return m.fetch(m.debouncer.Committed(), target)
}

// fetch starts a catalog fetch and keeps the spinner running while it loads
func (m *Model) fetch(query string, page int) tea.Cmd {
	cmd := m.browser.Fetch(query, page)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

// openDetail shows the movie in the pager
func (m *Model) openDetail(movie domain.Movie) tea.Cmd {
	poster := ""
	if m.catalog != nil {
		poster = m.catalog.PosterURL(movie.PosterPath, m.config.UI.PosterSize)
	}
	content := views.DetailText(movie, poster)
	pager := m.pager

	return tea.Sequence(
		func() tea.Msg { return pauseRenderingMsg{} },
		func() tea.Msg {
			err := pager.Show(content)
			return detailPagerMsg{movieID: movie.ID, err: err}
		},
	)
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	if e, ok := event.(eventbus.SearchRecordedEvent); ok {
		m.log.Debug().Str("query", e.Query).Msg("Search recorded")
	}
	return nil
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.StatusMessage = msg
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:  m.state,
		Browse: m.browser.State(),
	}
}

// updateViewportHeight sizes the result list to the space left by the chrome
func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}

	// padding 2, title 1, search box 3, heading 2, blank+page bar 2, scroll hints 2
	chrome := 12
	if m.config.UI.ShowTrending && len(m.state.Trending) > 0 {
		chrome += 3
	}
	if m.state.ShowHelp {
		chrome += 4
	} else {
		chrome++
	}

	m.state.SetViewportHeight(m.height-chrome, m.inputContext().TotalItems())
}
