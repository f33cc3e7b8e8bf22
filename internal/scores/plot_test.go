package scores

import (
	"strings"
	"testing"
)

func TestPlotEmptySeries(t *testing.T) {
	if got := Plot(nil, 40, 8); got != "No rounds to plot." {
		t.Fatalf("plot = %q", got)
	}
}

func TestPlotShape(t *testing.T) {
	out := Plot([]int{1, 4, 2, 4}, 40, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 4 rows + axis", len(lines))
	}
	top := []rune(lines[0])
	if top[0] == '█' {
		t.Fatalf("low column reached the top row")
	}
	if top[1] != '█' || top[3] != '█' {
		t.Fatalf("max columns missing from top row: %q", lines[0])
	}
	bottom := []rune(lines[3])
	for i, r := range bottom {
		if r == ' ' {
			t.Fatalf("column %d empty at the bottom row: %q", i, lines[3])
		}
	}
}

func TestPlotTruncatesToWidth(t *testing.T) {
	series := make([]int, 100)
	for i := range series {
		series[i] = i
	}
	out := Plot(series, 20, 4)
	lines := strings.Split(out, "\n")
	if got := len([]rune(lines[0])); got != 20 {
		t.Fatalf("row width = %d, want 20", got)
	}
}
