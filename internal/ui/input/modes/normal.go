package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moviezone/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return navigate("up"), true
	case tea.KeyDown:
		return navigate("down"), true
	case tea.KeyLeft:
		return navigate("left"), true
	case tea.KeyRight:
		return navigate("right"), true
	case tea.KeyPgUp:
		return navigate("pageup"), true
	case tea.KeyPgDown:
		return navigate("pagedown"), true
	case tea.KeyHome:
		return navigate("home"), true
	case tea.KeyEnd:
		return navigate("end"), true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{Index: -1}}, true
		}
		return nil, false
	}

	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "j":
		return navigate("down"), true
	case "k":
		return navigate("up"), true
	case "h":
		return navigate("left"), true
	case "l":
		return navigate("right"), true

	case "g":
		// gg goes to the first tile
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return navigate("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		return navigate("end"), true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.QueryText()}}, true

	case "F":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "?":
		return []types.Action{types.ShowHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		index := CategoryIndexForKey(key)
		if index < ctx.CategoryCount() {
			return []types.Action{types.BrowseCategoryAction{Index: index}}, true
		}
		return nil, false
	}

	return nil, false
}

// CategoryIndexForKey maps the digit keys to category bar positions: 1 is the
// first category and 0 the tenth.
func CategoryIndexForKey(key string) int {
	if key == "0" {
		return 9
	}
	return int(key[0]-'1')
}

// CategoryKeyForIndex is the inverse of CategoryIndexForKey
func CategoryKeyForIndex(index int) string {
	switch {
	case index == 9:
		return "0"
	case index >= 0 && index < 9:
		return string(rune('1' + index))
	}
	return ""
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
