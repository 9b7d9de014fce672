package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"moviezone/internal/ui/input/types"
)

// FilterMode edits the expression that narrows the visible results
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "rating >= 7 && runtime < 120", ti),
	}
}
