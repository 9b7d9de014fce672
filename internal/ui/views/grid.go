package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// TileWidth is the inner width of a tile
	TileWidth = 22
	// tileLines is the number of text lines inside a tile
	tileLines = 3
	tileGap   = 1
	// chromeLines approximates everything around the grid: header, search,
	// categories, status, footer, help and padding
	chromeLines = 14
)

// TileOuterWidth is the rendered width of a tile including border and padding
const TileOuterWidth = TileWidth + 4

// TileOuterHeight is the rendered height of a tile including its border
const TileOuterHeight = tileLines + 2

// GridLayout returns how many tile columns and rows fit in a terminal
func GridLayout(width, height int) (columns, rows int) {
	columns = (contentWidth(width) + tileGap) / (TileOuterWidth + tileGap)
	if columns < 1 {
		columns = 1
	}
	if height <= 0 {
		height = 24
	}
	rows = (height - chromeLines) / TileOuterHeight
	if rows < 1 {
		rows = 1
	}
	return columns, rows
}

// renderGrid renders the visible rows of result tiles
func (r *Renderer) renderGrid(state ViewState) string {
	cols := state.Columns
	if cols < 1 {
		cols = 1
	}
	rows := state.ViewportRows
	if rows < 1 {
		rows = 1
	}
	totalRows := (len(state.Tiles) + cols - 1) / cols

	start := state.ViewportOffset * cols
	end := start + rows*cols
	if end > len(state.Tiles) {
		end = len(state.Tiles)
	}
	if start > end {
		start = end
	}

	var lines []string
	if state.ViewportOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more rows above ↑", state.ViewportOffset)))
	}

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rendered = append(rendered, r.renderTile(state.Tiles[i], i == state.Cursor))
	}
	lines = append(lines, joinRows(rendered, cols))

	if below := totalRows - state.ViewportOffset - rows; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more rows below ↓", below)))
	}

	return strings.Join(lines, "\n")
}

// renderSkeletons renders the placeholder tiles shown while loading
func (r *Renderer) renderSkeletons(state ViewState) string {
	cols := state.Columns
	if cols < 1 {
		cols = 1
	}

	fill := strings.Repeat("░", TileWidth)
	body := strings.Join([]string{fill, fill, fill}, "\n")

	tiles := make([]string, 0, state.Skeletons)
	for i := 0; i < state.Skeletons; i++ {
		tiles = append(tiles, r.styles.TileSkeleton.Render(body))
	}
	return joinRows(tiles, cols)
}

func (r *Renderer) renderTile(tile TileView, selected bool) string {
	style := r.styles.Tile
	if selected {
		style = r.styles.TileSelected
	}

	poster := "no poster"
	if tile.PosterURL != "" {
		poster = "poster"
	}

	body := strings.Join([]string{
		r.styles.TileTitle.Render(truncate(tile.Title, TileWidth)),
		r.styles.Rating.Render(truncate("★ "+tile.Rating, TileWidth)),
		r.styles.Dim.Render(truncate(tile.Runtime+" · "+poster, TileWidth)),
	}, "\n")

	return style.Width(TileWidth + 2).Render(body)
}

// joinRows arranges rendered tiles into rows of cols
func joinRows(tiles []string, cols int) string {
	var rows []string
	for i := 0; i < len(tiles); i += cols {
		end := i + cols
		if end > len(tiles) {
			end = len(tiles)
		}
		row := make([]string, 0, 2*(end-i))
		for j, tile := range tiles[i:end] {
			if j > 0 {
				row = append(row, strings.Repeat(" ", tileGap))
			}
			row = append(row, tile)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
