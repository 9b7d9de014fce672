package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Catalog actions
type BrowseCategoryAction struct {
	Index int // position in the category bar
}

func (a BrowseCategoryAction) Type() string { return "browse_category" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Overlay actions
type OpenDetailAction struct {
	Index int // -1 for current
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseOverlayAction struct{}

func (a CloseOverlayAction) Type() string { return "close_overlay" }

type ShowOverviewAction struct{}

func (a ShowOverviewAction) Type() string { return "show_overview" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
