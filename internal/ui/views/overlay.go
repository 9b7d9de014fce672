package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// overlayMaxWidth caps the overlay box on wide terminals
const overlayMaxWidth = 80

// renderOverlay renders the detail overlay centered over the screen
func (r *Renderer) renderOverlay(state ViewState) string {
	o := state.Overlay

	width := state.Width - 6 // keep a small margin
	if width > overlayMaxWidth || width <= 0 {
		width = overlayMaxWidth
	}
	inner := width - 6 // border and padding
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(r.styles.OverlayTitle.Render(o.Title))
	b.WriteString("\n")
	if o.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(o.Overview))
		b.WriteString("\n\n")
	}
	b.WriteString(r.styles.Rating.Render(o.Meta))
	b.WriteString("\n")
	if o.PosterURL != "" {
		b.WriteString(r.styles.Dim.Render("Poster: "))
		b.WriteString(r.styles.Link.Render(o.PosterURL))
		b.WriteString("\n")
	}

	if len(o.Videos) > 0 {
		b.WriteString("\n")
		for _, v := range o.Videos {
			b.WriteString(v.Label)
			b.WriteString("\n  ")
			b.WriteString(r.styles.Link.Render(v.URL))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("p overview in pager • esc close"))

	box := r.styles.Overlay.Width(width).Render(b.String())

	if state.Width <= 0 || state.Height <= 0 {
		return box
	}
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, box)
}
