package tui

import (
	"testing"

	"github.com/verte-zerg/tuimole/internal/model"
)

func testModel() *Model {
	m := &Model{cfg: model.DefaultGameConfig()}
	m.resetBoard()
	return m
}

func TestCellForKeyReadingOrder(t *testing.T) {
	m := testModel()
	cases := []struct {
		key  string
		cell model.Cell
	}{
		{"1", model.Cell{Row: 0, Col: 0}},
		{"3", model.Cell{Row: 0, Col: 2}},
		{"4", model.Cell{Row: 1, Col: 0}},
		{"9", model.Cell{Row: 2, Col: 2}},
	}
	for _, tc := range cases {
		cell, ok := m.cellForKey(tc.key)
		if !ok {
			t.Fatalf("key %q not mapped", tc.key)
		}
		if cell != tc.cell {
			t.Fatalf("key %q = %v, want %v", tc.key, cell, tc.cell)
		}
	}
}

func TestCellForKeyRejectsNonDigits(t *testing.T) {
	m := testModel()
	for _, key := range []string{"0", "a", "", "10", "enter"} {
		if _, ok := m.cellForKey(key); ok {
			t.Fatalf("key %q unexpectedly mapped", key)
		}
	}
}

func TestCellForKeyOutsideGrid(t *testing.T) {
	m := testModel()
	m.cfg.Rows = 2
	m.cfg.Cols = 2
	if _, ok := m.cellForKey("5"); ok {
		t.Fatalf("key beyond a 2x2 grid unexpectedly mapped")
	}
}

func TestCellAtMapsBorderedCells(t *testing.T) {
	m := testModel()
	cases := []struct {
		x, y int
		cell model.Cell
	}{
		{gridLeft, gridTop, model.Cell{Row: 0, Col: 0}},
		{gridLeft + cellWidth - 1, gridTop + cellHeight - 1, model.Cell{Row: 0, Col: 0}},
		{gridLeft + cellWidth, gridTop, model.Cell{Row: 0, Col: 1}},
		{gridLeft + 2*cellWidth, gridTop + 2*cellHeight, model.Cell{Row: 2, Col: 2}},
	}
	for _, tc := range cases {
		cell, ok := m.cellAt(tc.x, tc.y)
		if !ok {
			t.Fatalf("(%d,%d) not mapped", tc.x, tc.y)
		}
		if cell != tc.cell {
			t.Fatalf("(%d,%d) = %v, want %v", tc.x, tc.y, cell, tc.cell)
		}
	}
}

func TestCellAtOutsideGrid(t *testing.T) {
	m := testModel()
	outside := []struct{ x, y int }{
		{0, gridTop},
		{gridLeft, 0},
		{gridLeft + 3*cellWidth, gridTop},
		{gridLeft, gridTop + 3*cellHeight},
	}
	for _, p := range outside {
		if _, ok := m.cellAt(p.x, p.y); ok {
			t.Fatalf("(%d,%d) unexpectedly mapped", p.x, p.y)
		}
	}
}
