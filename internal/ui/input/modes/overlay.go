package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"moviezone/internal/ui/input/types"
)

// OverlayMode is active while a detail overlay is shown. The grid behind it
// is scroll-locked, so movement keys are swallowed.
type OverlayMode struct{}

func NewOverlayMode() *OverlayMode {
	return &OverlayMode{}
}

func (m *OverlayMode) Name() string {
	return "detail"
}

func (m *OverlayMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OverlayMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OverlayMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "backspace", "x":
		return []types.Action{
			types.CloseOverlayAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "p":
		return []types.Action{types.ShowOverviewAction{}}, true
	case "?":
		return []types.Action{types.ShowHelpAction{}}, true
	}
	return nil, true
}
