package ui

import (
	"github.com/charmbracelet/bubbles/key"

	inputtypes "moviezone/internal/ui/input/types"
)

// keyMap lists the bindings advertised in the help line. The input modes do
// the actual dispatching.
type keyMap struct {
	Move     key.Binding
	Open     key.Binding
	Search   key.Binding
	Category key.Binding
	Filter   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding

	Submit key.Binding
	Cancel key.Binding

	Overview key.Binding
	Close    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Move:     key.NewBinding(key.WithKeys("up", "down", "left", "right", "h", "j", "k", "l"), key.WithHelp("←↑↓→", "move")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"), key.WithHelp("1-0", "category")),
		Filter:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "filter")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		Overview: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "overview")),
		Close:    key.NewBinding(key.WithKeys("esc", "q", "x", "backspace"), key.WithHelp("esc", "close")),
	}
}

// bindingsFor returns the help line bindings for an input mode
func (k keyMap) bindingsFor(mode inputtypes.Mode) []key.Binding {
	switch mode {
	case inputtypes.ModeSearch, inputtypes.ModeFilter:
		return []key.Binding{k.Submit, k.Cancel}
	case inputtypes.ModeOverlay:
		return []key.Binding{k.Overview, k.Close, k.Help}
	default:
		return []key.Binding{k.Move, k.Open, k.Search, k.Category, k.Filter, k.Reload, k.Help, k.Quit}
	}
}
