package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"moviezone/internal/domain"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows long content in the ov pager while the TUI is suspended
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new PagerOps instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show releases the terminal, runs ov over content and restores the terminal
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

type pagerStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

func newPagerStyles() pagerStyles {
	return pagerStyles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// RenderHelpContent generates the key reference shown in the pager
func RenderHelpContent() string {
	s := newPagerStyles()

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %s %s\n", s.key.Width(12).Render(keys), s.desc.Render(desc))
	}

	var help strings.Builder

	help.WriteString(s.title.Render("MovieZone Help"))
	help.WriteString("\n")

	help.WriteString(s.section.Render("Browsing"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move between rows"))
	help.WriteString(line("←/→, h/l", "Move between columns"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString(line("gg/G", "Go to first/last movie"))
	help.WriteString(line("Enter", "Open movie details"))
	help.WriteString(line("r", "Reload current results"))
	help.WriteString("\n")

	help.WriteString(s.section.Render("Search & Categories"))
	help.WriteString("\n")
	help.WriteString(line("/", "Search movies (empty search shows Trending)"))
	help.WriteString(line("1-9, 0", "Browse a category from the bar"))
	help.WriteString(line("F", "Filter the shown results"))
	help.WriteString(line("Esc", "Clear the filter"))
	help.WriteString("\n")
	help.WriteString(s.dim.Render("  Filter examples: rating >= 7, runtime < 100 && hasPoster, title contains \"Star\""))
	help.WriteString("\n")

	help.WriteString(s.section.Render("Details"))
	help.WriteString("\n")
	help.WriteString(line("p", "Read the overview in the pager"))
	help.WriteString(line("Esc, q, x", "Close details"))
	help.WriteString("\n")

	help.WriteString(s.section.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}

// RenderOverviewContent formats an open detail for reading in the pager
func RenderOverviewContent(d domain.Detail, posterURL string, videos []domain.Video) string {
	s := newPagerStyles()

	var b strings.Builder
	b.WriteString(s.title.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(s.key.Render("★ " + formatRating(d.VoteAverage)))
	b.WriteString("  ")
	b.WriteString(s.desc.Render("Runtime: " + formatRuntime(d.Runtime())))
	b.WriteString("\n\n")

	if d.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(76).Render(d.Overview))
		b.WriteString("\n")
	}

	b.WriteString(s.section.Render("Poster"))
	b.WriteString("\n  ")
	b.WriteString(posterURL)
	b.WriteString("\n")

	if len(videos) > 0 {
		b.WriteString(s.section.Render("Trailers"))
		b.WriteString("\n")
		for _, v := range videos {
			b.WriteString(fmt.Sprintf("  %s\n    %s\n", s.desc.Render(v.Name), v.EmbedURL()))
		}
	}

	return b.String()
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
