package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuimole/internal/confetti"
	"github.com/verte-zerg/tuimole/internal/model"
)

// Board geometry. Cells are bordered boxes; the grid is anchored at a
// fixed origin so mouse coordinates map back to cells arithmetically.
const (
	gridTop     = 2 // status line + blank line
	gridLeft    = 1
	cellContent = 5
	cellWidth   = cellContent + 2 // content + border
	cellHeight  = 3
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	recordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	activeCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("#C89A3A"))
)

var (
	appearGlyphs    = []string{".", "o", "@"}
	disappearGlyphs = []string{"@", "o", "."}
	activeGlyph     = "🐹"
	hiddenGlyph     = "·"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.sim != nil {
		return m.renderCelebration()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderHeader() string {
	parts := []string{
		fmt.Sprintf("Score %d", m.score),
		fmt.Sprintf("High %d", m.best),
		fmt.Sprintf("Time %d", m.timeLeft),
	}
	if m.mode == model.ModeSilver {
		parts = append(parts, fmt.Sprintf("Level %d", m.level))
	}
	header := statusStyle.Render(strings.Join(parts, "   "))
	if m.status == model.StatusPaused {
		header += pausedStyle.Render("   ⏸ paused")
	}
	return strings.Repeat(" ", gridLeft) + header
}

func (m *Model) renderGrid() string {
	rows := make([]string, 0, m.cfg.Rows)
	for r := 0; r < m.cfg.Rows; r++ {
		cells := make([]string, 0, m.cfg.Cols)
		for c := 0; c < m.cfg.Cols; c++ {
			cells = append(cells, m.renderCell(m.board[r][c]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	// Fixed left margin keeps the mouse mapping trivial.
	lines := strings.Split(grid, "\n")
	for i, line := range lines {
		lines[i] = strings.Repeat(" ", gridLeft) + line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(cs cellState) string {
	glyph := hiddenGlyph
	style := cellStyle
	switch cs.phase {
	case model.PhaseAppearing:
		glyph = frameGlyph(appearGlyphs, cs.frame)
	case model.PhaseActive:
		glyph = activeGlyph
		style = activeCellStyle
	case model.PhaseDisappearing:
		glyph = frameGlyph(disappearGlyphs, cs.frame)
	}
	return style.Render(centerCell(glyph, cellContent))
}

func frameGlyph(glyphs []string, frame int) string {
	if frame < 0 {
		frame = 0
	}
	if frame >= len(glyphs) {
		frame = len(glyphs) - 1
	}
	return glyphs[frame]
}

// centerCell pads a glyph to the cell width, accounting for wide runes.
func centerCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func (m *Model) renderFooter() string {
	var help string
	switch m.status {
	case model.StatusRunning:
		help = "1-9 or click: whack  p: pause  r: reset  q: quit"
	case model.StatusPaused:
		help = "p: resume  r: reset  q: quit"
	case model.StatusEnded:
		help = "space: play again  q: quit"
	default:
		help = "space: start  q: quit"
	}
	footer := strings.Repeat(" ", gridLeft) + helpStyle.Render(help)
	if m.status == model.StatusEnded && m.lastResult != nil {
		line := fmt.Sprintf("Time's up! Final score %d.", m.lastResult.Score)
		if m.lastResult.NewRecord {
			line += "  " + recordStyle.Render("New record!")
		}
		footer = strings.Repeat(" ", gridLeft) + line + "\n" + footer
	}
	return footer
}

// cellAt maps terminal coordinates back to a grid cell.
func (m *Model) cellAt(x, y int) (model.Cell, bool) {
	if x < gridLeft || y < gridTop {
		return model.Cell{}, false
	}
	cell := model.Cell{
		Row: (y - gridTop) / cellHeight,
		Col: (x - gridLeft) / cellWidth,
	}
	if cell.Row >= m.cfg.Rows || cell.Col >= m.cfg.Cols {
		return model.Cell{}, false
	}
	return cell, true
}

// renderCelebration paints the confetti field with the final score banner.
func (m *Model) renderCelebration() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	type point struct{ row, col int }
	field := map[point]confetti.Particle{}
	for _, p := range m.sim.Particles() {
		col := int(p.X / m.cfg.ViewportWidth * float64(width))
		row := int(p.Y / m.cfg.ViewportHeight * float64(height))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		field[point{row, col}] = p
	}

	banner := "★ NEW HIGH SCORE ★"
	if m.lastResult != nil {
		banner = fmt.Sprintf("★ NEW HIGH SCORE: %d ★", m.lastResult.Score)
	}
	bannerRow := height / 3
	bannerCol := (width - runewidth.StringWidth(banner)) / 2
	if bannerCol < 0 {
		bannerCol = 0
	}

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		var line strings.Builder
		if row == bannerRow {
			line.WriteString(strings.Repeat(" ", bannerCol))
			line.WriteString(recordStyle.Render(banner))
			lines = append(lines, line.String())
			continue
		}
		for col := 0; col < width; col++ {
			p, ok := field[point{row, col}]
			if !ok {
				line.WriteRune(' ')
				continue
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(confetti.Palette[p.Color]))
			line.WriteString(style.Render(particleGlyph(p)))
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return strings.Join(lines, "\n")
}

func particleGlyph(p confetti.Particle) string {
	switch {
	case p.Size < 8:
		return "·"
	case p.Size < 12:
		return "*"
	default:
		return "@"
	}
}
