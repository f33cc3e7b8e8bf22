package scores

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	terminalWidthBackup = 80
)

// TerminalWidth returns the current terminal width, falling back to 80 when
// stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// Plot renders the score history as a column chart, oldest round on the
// left. One column per round, scaled to the highest score in the series.
func Plot(series []int, width, height int) string {
	if len(series) == 0 {
		return "No rounds to plot."
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}
	if len(series) > width {
		series = series[len(series)-width:]
	}

	max := 0
	for _, v := range series {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		for _, v := range series {
			// Column height in half-steps so short series still show shape.
			filled := v * height / max
			switch {
			case filled >= row:
				b.WriteRune('█')
			case v*height*2/max >= row*2-1:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}
	b.WriteString(strings.Repeat("─", len(series)))
	return b.String()
}
