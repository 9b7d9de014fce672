package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviezone/internal/domain"
	inputtypes "moviezone/internal/ui/input/types"
	"moviezone/internal/ui/services/fetch"
	"moviezone/internal/ui/services/overlay"
	"moviezone/internal/ui/views"
)

type fakeCatalog struct {
	mu       sync.Mutex
	listings map[string][]domain.ResultItem
	searches map[string][]domain.ResultItem
	details  map[int]domain.Detail
	errs     map[string]error

	calls []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		listings: map[string][]domain.ResultItem{},
		searches: map[string][]domain.ResultItem{},
		details:  map[int]domain.Detail{},
		errs:     map[string]error{},
	}
}

func (f *fakeCatalog) List(ctx context.Context, key string) ([]domain.ResultItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "list:"+key)
	if err := f.errs["list:"+key]; err != nil {
		return nil, err
	}
	return f.listings[key], nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string) ([]domain.ResultItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "search:"+query)
	if err := f.errs["search:"+query]; err != nil {
		return nil, err
	}
	return f.searches[query], nil
}

func (f *fakeCatalog) Detail(ctx context.Context, id int) (domain.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "detail")
	d, ok := f.details[id]
	if !ok {
		return domain.Detail{}, errors.New("not found")
	}
	return d, nil
}

func (f *fakeCatalog) lastCall() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return ""
	}
	return f.calls[len(f.calls)-1]
}

func items(titles ...string) []domain.ResultItem {
	out := make([]domain.ResultItem, 0, len(titles))
	for i, title := range titles {
		out = append(out, domain.ResultItem{ID: i + 1, Title: title, VoteAverage: float64(i + 5)})
	}
	return out
}

func newTestModel(t *testing.T, cat *fakeCatalog) *Model {
	t.Helper()
	m := NewModel(Options{
		Catalog:         cat,
		Images:          domain.Images{BaseURL: "https://img.test/w500", PlaceholderURL: "https://placeholder.test/300x450"},
		DefaultCategory: domain.Category{Key: domain.TrendingKey, Label: "Trending"},
		Logger:          zerolog.Nop(),
	})
	m.now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// run executes cmd and returns the messages it yields. Commands that block,
// such as the toast timer, are dropped.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, run(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// catalogMsgs keeps only the fetch and detail results from msgs
func catalogMsgs(msgs []tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		switch msg.(type) {
		case fetch.ResultMsg, overlay.DetailMsg:
			out = append(out, msg)
		}
	}
	return out
}

func deliver(m *Model, msgs []tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

// settle runs cmd and delivers its catalog results to m
func settle(m *Model, cmd tea.Cmd) {
	deliver(m, catalogMsgs(run(cmd)))
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range keys {
		_, cmd := m.Update(keyPress(k))
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func typeText(m *Model, text string) {
	for _, r := range text {
		press(m, string(r))
	}
}

// search opens the search box, replaces its text and submits it
func search(m *Model, text string) tea.Cmd {
	press(m, "/")
	for range m.QueryText() {
		press(m, "backspace")
	}
	typeText(m, text)
	return press(m, "enter")
}

func TestInitialLoadUsesDefaultListing(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo", "charlie")
	m := newTestModel(t, cat)

	cmd := m.Init()
	assert.True(t, m.Loading())
	assert.Contains(t, m.View(), "░", "skeletons while loading")

	settle(m, cmd)
	assert.Equal(t, "list:trending", cat.lastCall())
	assert.False(t, m.Loading())
	assert.Len(t, m.Visible(), 3)
	assert.Contains(t, m.View(), "alpha")
}

func TestLatestRequestWins(t *testing.T) {
	for _, tc := range []struct {
		name       string
		olderFirst bool
	}{
		{name: "older completes first", olderFirst: true},
		{name: "newer completes first", olderFirst: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cat := newFakeCatalog()
			cat.searches["star"] = items("star one", "star two")
			cat.searches["Action"] = items("explosions")
			m := newTestModel(t, cat)
			settle(m, m.Init())

			older := catalogMsgs(run(search(m, "star")))
			newer := catalogMsgs(run(press(m, "2")))
			require.Len(t, older, 1)
			require.Len(t, newer, 1)
			assert.Equal(t, "Action", m.QueryText())

			first, second := newer, older
			if tc.olderFirst {
				first, second = older, newer
			}

			deliver(m, first)
			assert.True(t, m.Loading(), "loading covers the outstanding request")
			deliver(m, second)

			assert.False(t, m.Loading())
			require.Len(t, m.Results(), 1)
			assert.Equal(t, "explosions", m.Results()[0].Title)
		})
	}
}

func TestEmptySubmitUsesListing(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha")
	cat.searches["zzz"] = items()
	m := newTestModel(t, cat)
	settle(m, m.Init())

	settle(m, search(m, "zzz"))
	assert.Equal(t, "search:zzz", cat.lastCall())

	settle(m, search(m, ""))
	assert.Equal(t, "list:trending", cat.lastCall())
	assert.Len(t, m.Visible(), 1)
}

func TestCategoryBrowseSearchesByLabel(t *testing.T) {
	cat := newFakeCatalog()
	cat.searches["Comedy"] = items("laughs")
	m := newTestModel(t, cat)
	settle(m, m.Init())

	settle(m, press(m, "3"))
	assert.Equal(t, "search:Comedy", cat.lastCall())
	assert.Equal(t, "Comedy", m.QueryText())

	state := m.buildViewState()
	for _, c := range state.Categories {
		assert.Equal(t, c.Label == "Comedy", c.Active, c.Label)
	}
}

func TestTypingMovesCategoryHighlight(t *testing.T) {
	m := newTestModel(t, newFakeCatalog())
	settle(m, m.Init())

	press(m, "/")
	typeText(m, "Horror")
	assert.Equal(t, "Horror", m.QueryText())

	active := ""
	for _, c := range m.buildViewState().Categories {
		if c.Active {
			active = c.Label
		}
	}
	assert.Equal(t, "Horror", active)
}

func TestSearchCancelRestoresText(t *testing.T) {
	cat := newFakeCatalog()
	m := newTestModel(t, cat)
	settle(m, m.Init())
	settle(m, search(m, "dune"))

	press(m, "/")
	typeText(m, " part two")
	assert.Equal(t, "dune part two", m.QueryText())

	press(m, "esc")
	assert.Equal(t, "dune", m.QueryText())
	assert.Equal(t, inputtypes.ModeNormal, m.Mode())
	assert.Equal(t, "search:dune", cat.lastCall(), "cancel issues nothing")
}

func TestFetchFailureKeepsResults(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo")
	cat.errs["search:broken"] = errors.New("boom")
	m := newTestModel(t, cat)
	settle(m, m.Init())

	settle(m, search(m, "broken"))
	assert.False(t, m.Loading())
	assert.Len(t, m.Results(), 2)
	assert.Contains(t, m.StatusMessage(), "Couldn't load movies")
	assert.Contains(t, m.View(), "alpha")
}

func TestEmptyResultsShowEmptyState(t *testing.T) {
	cat := newFakeCatalog()
	m := newTestModel(t, cat)
	settle(m, m.Init())

	assert.Empty(t, m.Visible())
	assert.Contains(t, m.View(), views.EmptyMessage)
}

func TestOpenDetailLocksScroll(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo", "charlie", "delta", "echo", "foxtrot")
	cat.details[1] = domain.Detail{ID: 1, Title: "alpha", Overview: "First letter."}
	m := newTestModel(t, cat)
	settle(m, m.Init())

	settle(m, press(m, "enter"))
	_, open := m.SelectedDetail()
	require.True(t, open)
	assert.True(t, m.ScrollLocked())
	assert.Equal(t, inputtypes.ModeOverlay, m.Mode())
	assert.Contains(t, m.View(), "First letter.")

	press(m, "j", "l")
	assert.Equal(t, 0, m.nav.Cursor(), "grid does not move behind the overlay")

	press(m, "esc")
	_, open = m.SelectedDetail()
	assert.False(t, open)
	assert.False(t, m.ScrollLocked())
	assert.Equal(t, inputtypes.ModeNormal, m.Mode())

	// closing twice is harmless
	m.overlay.Close()
	assert.False(t, m.ScrollLocked())

	press(m, "l")
	assert.Equal(t, 1, m.nav.Cursor())
}

func TestOnlyLatestDetailOpens(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo")
	cat.details[1] = domain.Detail{ID: 1, Title: "alpha"}
	cat.details[2] = domain.Detail{ID: 2, Title: "bravo"}
	m := newTestModel(t, cat)
	settle(m, m.Init())

	first := catalogMsgs(run(press(m, "enter")))
	press(m, "l")
	second := catalogMsgs(run(press(m, "enter")))

	deliver(m, second)
	deliver(m, first)

	d, open := m.SelectedDetail()
	require.True(t, open)
	assert.Equal(t, "bravo", d.Title)
}

func TestOverlayListsAtMostTwoYouTubeVideos(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha")
	cat.details[1] = domain.Detail{ID: 1, Title: "alpha", Videos: []domain.Video{
		{Name: "Vimeo cut", Site: "Vimeo", Key: "v1"},
		{Name: "Trailer", Site: "YouTube", Key: "yt1", Type: "Trailer"},
		{Name: "Teaser", Site: "YouTube", Key: "yt2", Type: "Teaser"},
		{Name: "Clip", Site: "YouTube", Key: "yt3", Type: "Clip"},
	}}
	m := newTestModel(t, cat)
	settle(m, m.Init())
	settle(m, press(m, "enter"))

	view := m.View()
	assert.Contains(t, view, "https://www.youtube.com/embed/yt1")
	assert.Contains(t, view, "https://www.youtube.com/embed/yt2")
	assert.NotContains(t, view, "yt3")
	assert.NotContains(t, view, "Vimeo cut")
}

func TestDetailFailureShowsToast(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha")
	m := newTestModel(t, cat)
	settle(m, m.Init())

	settle(m, press(m, "enter"))
	_, open := m.SelectedDetail()
	assert.False(t, open)
	assert.False(t, m.ScrollLocked())
	assert.Contains(t, m.StatusMessage(), "Couldn't load details")
	assert.Equal(t, inputtypes.ModeNormal, m.Mode())
}

func TestQuitClosesOverlay(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha")
	cat.details[1] = domain.Detail{ID: 1, Title: "alpha"}
	m := newTestModel(t, cat)
	settle(m, m.Init())
	settle(m, press(m, "enter"))
	require.True(t, m.ScrollLocked())

	msgs := run(press(m, "ctrl+c"))
	assert.Contains(t, msgs, tea.QuitMsg{})
	assert.False(t, m.ScrollLocked())
}

func TestFilterNarrowsVisibleTiles(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo", "charlie", "delta")
	m := newTestModel(t, cat)
	settle(m, m.Init())

	press(m, "F")
	assert.Equal(t, inputtypes.ModeFilter, m.Mode())
	typeText(m, "rating >= 7")
	press(m, "enter")

	require.Len(t, m.Visible(), 2)
	assert.Equal(t, "charlie", m.Visible()[0].Title)
	assert.Len(t, m.Results(), 4, "filtering leaves the fetched list alone")
	assert.Contains(t, m.View(), "[Filter: rating >= 7]")

	press(m, "esc")
	assert.Len(t, m.Visible(), 4)
}

func TestInvalidFilterKeepsPrevious(t *testing.T) {
	cat := newFakeCatalog()
	cat.listings[domain.TrendingKey] = items("alpha", "bravo", "charlie")
	m := newTestModel(t, cat)
	settle(m, m.Init())

	press(m, "F")
	typeText(m, "rating >")
	press(m, "enter")

	assert.Len(t, m.Visible(), 3)
	assert.Contains(t, m.StatusMessage(), "Invalid filter")
}

func TestClearStatusIgnoresSupersededToast(t *testing.T) {
	m := newTestModel(t, newFakeCatalog())
	m.setStatus("first", false)
	m.setStatus("second", true)

	m.Update(clearStatusMsg{seq: 1})
	assert.Equal(t, "second", m.StatusMessage())

	m.Update(clearStatusMsg{seq: 2})
	assert.Empty(t, m.StatusMessage())
}

func TestPagerWithoutProgramReportsError(t *testing.T) {
	m := newTestModel(t, newFakeCatalog())
	settle(m, m.Init())

	msgs := run(press(m, "?"))
	require.Len(t, msgs, 1)
	m.Update(msgs[0])
	assert.Contains(t, m.StatusMessage(), "Couldn't open help")
}

func TestFooterShowsYearAndQuickLinks(t *testing.T) {
	m := newTestModel(t, newFakeCatalog())
	settle(m, m.Init())

	view := m.View()
	assert.Contains(t, view, "© 2024 MovieZone")
	assert.Contains(t, view, "Motivational")
}
