package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"moviezone/internal/catalog"
	"moviezone/internal/domain"
	"moviezone/internal/filter"
	"moviezone/internal/ui/input"
	"moviezone/internal/ui/input/modes"
	inputtypes "moviezone/internal/ui/input/types"
	"moviezone/internal/ui/services/fetch"
	"moviezone/internal/ui/services/navigation"
	"moviezone/internal/ui/services/overlay"
	"moviezone/internal/ui/services/query"
	"moviezone/internal/ui/views"
)

// statusTTL is how long a toast stays on screen
const statusTTL = 3 * time.Second

// Options configures a Model
type Options struct {
	Catalog         catalog.Catalog
	Images          domain.Images
	DefaultCategory domain.Category
	Timeout         time.Duration // per-request deadline, 0 for none
	Logger          zerolog.Logger
}

// Model represents the UI state
type Model struct {
	catalog catalog.Catalog
	images  domain.Images
	logger  zerolog.Logger

	query   *query.Service
	fetch   *fetch.Service
	overlay *overlay.Service
	lock    *overlay.ScrollLock
	nav     *navigation.Service

	// filter narrows the applied results client-side; nil shows everything
	filter  *filter.Filter
	visible []domain.ResultItem

	width    int
	height   int
	spinner  spinner.Model
	spinning bool
	help     help.Model
	keys     keyMap

	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        *PagerOps

	statusMessage string
	statusIsError bool
	statusSeq     int

	// searchBeforeEdit restores the query text when a search edit is cancelled
	searchBeforeEdit string

	inPagerMode bool
	program     *tea.Program
	now         func() time.Time
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	lock := &overlay.ScrollLock{}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &Model{
		catalog:      opts.Catalog,
		images:       opts.Images,
		logger:       opts.Logger,
		query:        query.NewService(opts.DefaultCategory),
		fetch:        fetch.NewService(opts.Timeout, opts.Logger),
		overlay:      overlay.NewService(lock, opts.Timeout, opts.Logger),
		lock:         lock,
		nav:          navigation.NewService(lock),
		visible:      []domain.ResultItem{},
		spinner:      sp,
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
		now:          time.Now,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init issues the initial listing
func (m *Model) Init() tea.Cmd {
	return m.issue(m.query.InitialLoad())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.nav.SetLayout(views.GridLayout(msg.Width, msg.Height))
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		before := m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		if before != inputtypes.ModeSearch && m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.searchBeforeEdit = m.query.Text()
		}

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

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
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
	return m.renderer.Render(m.buildViewState())
}

// issue starts a result-list fetch for req; the previous one becomes stale
func (m *Model) issue(req query.Request) tea.Cmd {
	cat := m.catalog

	var fn fetch.FetchFunc
	switch req.Kind {
	case query.KindListing:
		key := req.Category.Key
		fn = func(ctx context.Context) ([]domain.ResultItem, error) {
			return cat.List(ctx, key)
		}
	default:
		term := req.Term
		fn = func(ctx context.Context) ([]domain.ResultItem, error) {
			return cat.Search(ctx, term)
		}
	}

	id, cmd := m.fetch.Issue(fn)
	m.logger.Debug().
		Uint64("request", id).
		Str("kind", req.Kind.String()).
		Str("term", req.Term).
		Str("category", req.Category.Key).
		Msg("Fetch issued")

	if m.spinning {
		return cmd
	}
	m.spinning = true
	return tea.Batch(cmd, m.spinner.Tick)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.query.SetText(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.query.SetText(a.Text)
			return m.issue(m.query.Submit())
		case inputtypes.ModeFilter:
			return m.setFilter(a.Text)
		}

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.query.SetText(m.searchBeforeEdit)
		}

	case inputtypes.BrowseCategoryAction:
		cats := domain.Categories()
		if a.Index < 0 || a.Index >= len(cats) {
			return nil
		}
		req, err := m.query.Browse(cats[a.Index].Label)
		if err != nil {
			m.logger.Error().Err(err).Msg("Category browse failed")
			return m.setStatus(err.Error(), true)
		}
		return m.issue(req)

	case inputtypes.ReloadAction:
		return m.issue(m.query.Submit())

	case inputtypes.ClearFilterAction:
		return m.setFilter("")

	case inputtypes.OpenDetailAction:
		index := a.Index
		if index < 0 {
			index = m.nav.Cursor()
		}
		if index < 0 || index >= len(m.visible) {
			return nil
		}
		id := m.visible[index].ID
		cat := m.catalog
		m.logger.Debug().Int("movie", id).Msg("Opening details")
		return m.overlay.Open(id, func(ctx context.Context) (domain.Detail, error) {
			return cat.Detail(ctx, id)
		})

	case inputtypes.CloseOverlayAction:
		m.overlay.Close()

	case inputtypes.ShowOverviewAction:
		detail, ok := m.overlay.Selected()
		if !ok {
			return nil
		}
		content := RenderOverviewContent(detail, m.images.DetailPosterURL(detail), m.overlay.Videos())
		return m.showInPager("overview", content)

	case inputtypes.ShowHelpAction:
		return m.showInPager("help", RenderHelpContent())

	case inputtypes.QuitAction:
		m.overlay.Close()
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.ResultMsg:
		switch m.fetch.Settle(msg) {
		case fetch.OutcomeApplied:
			m.applyFilter()
			m.nav.Reset(len(m.visible))
		case fetch.OutcomeFailed:
			return m, m.setStatus(fmt.Sprintf("Couldn't load movies: %v", msg.Err), true)
		}
		return m, nil

	case overlay.DetailMsg:
		switch m.overlay.Settle(msg) {
		case overlay.OutcomeOpened:
			if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
				m.query.SetText(m.searchBeforeEdit)
			}
			m.inputHandler.ChangeMode(inputtypes.ModeOverlay, "", m.inputContext())
		case overlay.OutcomeFailed:
			return m, m.setStatus(fmt.Sprintf("Couldn't load details: %v", msg.Err), true)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.fetch.Loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("content", msg.what).Msg("Pager failed")
			return m, m.setStatus(fmt.Sprintf("Couldn't open %s: %v", msg.what, msg.err), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		// A newer toast replaced the one this tick was scheduled for
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
			m.statusIsError = false
		}
		return m, nil

	default:
		return m, nil
	}
}

// showInPager returns a command that shows content using the ov pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	program := m.program
	pager := m.pager
	if program == nil {
		return func() tea.Msg { return pagerMsg{what: what, err: errNoProgram} }
	}

	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.Show(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{what: what, err: err}
	}
}

// setStatus shows a toast and schedules it to clear
func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusSeq++
	m.statusMessage = message
	m.statusIsError = isError

	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// setFilter compiles and applies a filter expression. An empty expression clears it.
func (m *Model) setFilter(expression string) tea.Cmd {
	if strings.TrimSpace(expression) == "" {
		if m.filter == nil {
			return nil
		}
		m.filter = nil
		m.applyFilter()
		m.nav.Reset(len(m.visible))
		return nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		m.logger.Debug().Err(err).Str("expression", expression).Msg("Rejected filter")
		return m.setStatus(fmt.Sprintf("Invalid filter: %v", err), true)
	}
	m.filter = f
	m.applyFilter()
	m.nav.Reset(len(m.visible))
	return m.setStatus(fmt.Sprintf("Showing %d of %d movies", len(m.visible), len(m.fetch.Results())), false)
}

func (m *Model) applyFilter() {
	m.visible = m.filter.Apply(m.fetch.Results())
}

func (m *Model) inputContext() *input.ModelContext {
	ctx := &input.ModelContext{
		Index:      m.nav.Cursor(),
		Items:      len(m.visible),
		Categories: len(domain.Categories()),
		Query:      m.query.Text(),
		Overlay:    m.overlay.IsOpen(),
	}
	if m.filter != nil {
		ctx.Filter = m.filter.Expression()
	}
	return ctx
}

func (m *Model) buildViewState() views.ViewState {
	nav := m.nav.State()
	mode := m.inputHandler.CurrentMode()

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		SearchText:     m.query.Text(),
		Loading:        m.fetch.Loading(),
		Skeletons:      fetch.SkeletonTiles,
		Spinner:        m.spinner.View(),
		Cursor:         nav.Cursor,
		Columns:        nav.Columns,
		ViewportOffset: nav.ViewportOffset,
		ViewportRows:   nav.ViewportRows,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		HelpLine:       m.help.ShortHelpView(m.keys.bindingsFor(mode)),
		Year:           m.now().Year(),
	}
	_, state.PendingDetail = m.overlay.Pending()

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputMode = mode.String()
		state.TextInput = ti.View()
	}
	if m.filter != nil {
		state.FilterQuery = m.filter.Expression()
	}

	cats := domain.Categories()
	state.Categories = make([]views.CategoryView, 0, len(cats))
	hotkeys := make(map[string]string, len(cats))
	for i, cat := range cats {
		hotkey := modes.CategoryKeyForIndex(i)
		hotkeys[cat.Key] = hotkey
		state.Categories = append(state.Categories, views.CategoryView{
			Label:  cat.Label,
			Hotkey: hotkey,
			Active: m.query.IsActive(cat),
		})
	}
	for _, cat := range domain.FooterCategories() {
		state.Footer = append(state.Footer, views.CategoryView{
			Label:  cat.Label,
			Hotkey: hotkeys[cat.Key],
			Active: m.query.IsActive(cat),
		})
	}

	state.Tiles = make([]views.TileView, 0, len(m.visible))
	for _, item := range m.visible {
		tile := views.TileView{
			Title:   item.Title,
			Rating:  formatRating(item.VoteAverage),
			Runtime: formatRuntime(item.Runtime()),
		}
		if item.HasPoster() {
			tile.PosterURL = m.images.PosterURL(item)
		}
		state.Tiles = append(state.Tiles, tile)
	}

	if detail, ok := m.overlay.Selected(); ok {
		o := &views.OverlayView{
			Title:     detail.Title,
			Overview:  detail.Overview,
			Meta:      fmt.Sprintf("Rating: %s • Runtime: %s", formatRating(detail.VoteAverage), formatRuntime(detail.Runtime())),
			PosterURL: m.images.DetailPosterURL(detail),
		}
		for _, v := range m.overlay.Videos() {
			label := v.Name
			if v.Type != "" {
				label = fmt.Sprintf("%s (%s)", v.Name, v.Type)
			}
			o.Videos = append(o.Videos, views.VideoView{Label: label, URL: v.EmbedURL()})
		}
		state.Overlay = o
	}

	return state
}

// Results returns the applied result list, before filtering
func (m *Model) Results() []domain.ResultItem {
	return m.fetch.Results()
}

// Visible returns the tiles currently shown
func (m *Model) Visible() []domain.ResultItem {
	return m.visible
}

// Loading reports whether any result fetch is outstanding
func (m *Model) Loading() bool {
	return m.fetch.Loading()
}

// SelectedDetail returns the detail shown in the overlay
func (m *Model) SelectedDetail() (domain.Detail, bool) {
	return m.overlay.Selected()
}

// ScrollLocked reports whether the grid behind the overlay is locked
func (m *Model) ScrollLocked() bool {
	return m.lock.Locked()
}

// QueryText returns the current search text
func (m *Model) QueryText() string {
	return m.query.Text()
}

// StatusMessage returns the toast currently shown
func (m *Model) StatusMessage() string {
	return m.statusMessage
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}
