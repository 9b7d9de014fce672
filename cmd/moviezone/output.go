package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"moviezone/internal/domain"
)

// isTerminal reports whether f is an interactive terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printer writes command output, styled for terminals and plain for pipes
type printer struct {
	w      io.Writer
	styled bool

	title  lipgloss.Style
	rating lipgloss.Style
	dim    lipgloss.Style
	link   lipgloss.Style
}

func newPrinter(w io.Writer, styled bool) *printer {
	return &printer{
		w:      w,
		styled: styled,
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		rating: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		link:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

func (p *printer) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}

func (p *printer) results(items []domain.ResultItem, images domain.Images) {
	if len(items) == 0 {
		fmt.Fprintln(p.w, "No movies found.")
		return
	}

	fmt.Fprintf(p.w, "Found %d movies:\n", len(items))
	fmt.Fprintln(p.w, strings.Repeat("-", 60))
	for _, item := range items {
		fmt.Fprintf(p.w, "• %s  %s  %s\n",
			p.render(p.title, item.Title),
			p.render(p.rating, "★ "+formatRating(item.VoteAverage)),
			p.render(p.dim, fmt.Sprintf("#%d · %s", item.ID, formatRuntime(item.Runtime()))),
		)
		fmt.Fprintf(p.w, "  %s\n", p.render(p.link, images.PosterURL(item)))
	}
}

func (p *printer) detail(d domain.Detail, posterURL string, videos []domain.Video) {
	fmt.Fprintln(p.w, p.render(p.title, d.Title))
	fmt.Fprintf(p.w, "Rating: %s • Runtime: %s\n", formatRating(d.VoteAverage), formatRuntime(d.Runtime()))
	if d.Overview != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, d.Overview)
	}
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "Poster: %s\n", p.render(p.link, posterURL))

	for _, v := range videos {
		label := v.Name
		if v.Type != "" {
			label = fmt.Sprintf("%s (%s)", v.Name, v.Type)
		}
		fmt.Fprintf(p.w, "%s: %s\n", label, p.render(p.link, v.EmbedURL()))
	}
}

func (p *printer) categories(rows []categoryCount, counted bool) {
	for i, row := range rows {
		line := fmt.Sprintf("%2d. %-14s %s", i+1, row.Category.Label, p.render(p.dim, row.Category.Key))
		if row.Count >= 0 {
			line += fmt.Sprintf("  %d movies", row.Count)
		} else if counted {
			line += "  n/a"
		}
		fmt.Fprintln(p.w, line)
	}
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d min", minutes)
}
