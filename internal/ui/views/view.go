package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EmptyMessage is shown when a fetch succeeded with no results
const EmptyMessage = "No movies found! Try a different search or category."

// CategoryView is one button of the category bar or footer
type CategoryView struct {
	Label  string
	Hotkey string
	Active bool
}

// TileView is one movie in the result grid
type TileView struct {
	Title     string
	Rating    string
	Runtime   string
	PosterURL string
}

// VideoView is one trailer listed in the overlay
type VideoView struct {
	Label string
	URL   string
}

// OverlayView is the content of the detail overlay
type OverlayView struct {
	Title     string
	Overview  string
	Meta      string
	PosterURL string
	Videos    []VideoView
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	InputMode   string // "search", "filter" or "" when no text input is active
	TextInput   string // rendered text input
	SearchText  string
	FilterQuery string

	Categories []CategoryView
	Footer     []CategoryView

	Loading        bool
	Skeletons      int
	Spinner        string
	PendingDetail  bool
	Tiles          []TileView
	Cursor         int
	Columns        int
	ViewportOffset int
	ViewportRows   int

	StatusMessage string
	StatusIsError bool

	Overlay  *OverlayView
	HelpLine string
	Year     int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Overlay != nil {
		return r.renderOverlay(state)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n")
	if state.InputMode == "filter" {
		content.WriteString(r.styles.Filter.Render("Filter: ") + state.TextInput)
		content.WriteString("\n")
	}

	content.WriteString(r.renderCategoryBar(state.Categories, contentWidth(state.Width)))
	content.WriteString("\n\n")

	switch {
	case state.Loading:
		content.WriteString(r.renderSkeletons(state))
	case len(state.Tiles) == 0:
		content.WriteString(r.styles.Empty.Render(EmptyMessage))
	default:
		content.WriteString(r.renderGrid(state))
	}
	content.WriteString("\n")

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(r.renderFooter(state))

	if state.HelpLine != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpLine))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("MovieZone")

	var indicators []string
	if state.Loading {
		indicators = append(indicators, r.styles.StatusLoading.Render(strings.TrimSpace(state.Spinner+" Loading")))
	}
	if state.PendingDetail {
		indicators = append(indicators, r.styles.StatusLoading.Render("Loading details…"))
	}
	if state.FilterQuery != "" {
		indicators = append(indicators, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s]", state.FilterQuery)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	padding := contentWidth(state.Width) - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	prompt := r.styles.Prompt.Render("Search: ")
	if state.InputMode == "search" {
		return prompt + state.TextInput
	}
	if state.SearchText == "" {
		return prompt + r.styles.Dim.Render("Search movies...  (press / to type)")
	}
	return prompt + state.SearchText
}

// renderCategoryBar lays out the buttons, wrapping to the available width
func (r *Renderer) renderCategoryBar(categories []CategoryView, width int) string {
	var lines []string
	var line []string
	lineWidth := 0

	for _, cat := range categories {
		button := r.renderCategoryButton(cat)
		w := lipgloss.Width(button)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line = nil
			lineWidth = 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		line = append(line, button)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderCategoryButton(cat CategoryView) string {
	style := r.styles.Category
	if cat.Active {
		style = r.styles.CategoryActive
	}
	label := cat.Label
	if cat.Hotkey != "" {
		label = cat.Hotkey + " " + label
	}
	return style.Render(label)
}

func (r *Renderer) renderFooter(state ViewState) string {
	links := make([]string, 0, len(state.Footer))
	for _, cat := range state.Footer {
		if cat.Hotkey != "" {
			links = append(links, r.styles.Hotkey.Render(cat.Hotkey)+" "+cat.Label)
		} else {
			links = append(links, cat.Label)
		}
	}

	var b strings.Builder
	b.WriteString(r.styles.Footer.Render("Quick links: "))
	b.WriteString(strings.Join(links, r.styles.Footer.Render(" · ")))
	b.WriteString("\n")
	b.WriteString(r.styles.Footer.Render(fmt.Sprintf("© %d MovieZone", state.Year)))
	return b.String()
}

func contentWidth(width int) int {
	if width <= 0 {
		width = 80 // Default terminal width
	}
	w := width - 4 // Main padding
	if w < 10 {
		w = 10
	}
	return w
}
