package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/talgya/hexcanvas/internal/hex"
)

// TestNewGrid verifies shape and default fill
func TestNewGrid(t *testing.T) {
	g := New(10, 20, hex.LayoutOffsetRows, DefaultColor)

	if g.Height() != 10 || g.Width() != 20 {
		t.Fatalf("Expected 10x20, got %dx%d", g.Height(), g.Width())
	}
	if n := g.Count(DefaultColor); n != 200 {
		t.Errorf("Expected 200 default cells, got %d", n)
	}
}

// TestFromRowsRejectsBadShapes covers the dimension checks used on load
func TestFromRowsRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]Color
	}{
		{name: "too few rows", rows: [][]Color{{white, white}}},
		{name: "short row", rows: [][]Color{{white, white}, {white}}},
		{name: "long row", rows: [][]Color{{white, white}, {white, white, white}}},
		{name: "nil", rows: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRows(tt.rows, 2, 2, hex.LayoutOffsetRows); !errors.Is(err, ErrDimensions) {
				t.Errorf("Expected ErrDimensions, got %v", err)
			}
		})
	}
}

// TestFromRowsCopies verifies later edits to the source rows do not leak in
func TestFromRowsCopies(t *testing.T) {
	rows := [][]Color{{white, black}}
	g, err := FromRows(rows, 1, 2, hex.LayoutOffsetRows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	rows[0][0] = red
	if c := g.At(hex.Coord{Row: 0, Col: 0}); c != white {
		t.Errorf("Expected %s, got %s", white, c)
	}
}

// TestPaintCopyOnWrite verifies Paint leaves the input untouched
func TestPaintCopyOnWrite(t *testing.T) {
	g := New(3, 3, hex.LayoutOffsetRows, white)
	at := hex.Coord{Row: 1, Col: 2}

	next, err := Paint(g, at, red)
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if c := next.At(at); c != red {
		t.Errorf("Expected painted cell %s, got %s", red, c)
	}
	if next.Count(red) != 1 {
		t.Errorf("Expected exactly one painted cell, got %d", next.Count(red))
	}
	if g.Count(white) != 9 {
		t.Errorf("Input grid was modified")
	}

	if _, err := Paint(g, hex.Coord{Row: 3, Col: 0}, red); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

// TestRowsIsDeepCopy verifies callers cannot reach the grid's storage
func TestRowsIsDeepCopy(t *testing.T) {
	g := New(2, 2, hex.LayoutOffsetRows, white)
	rows := g.Rows()
	rows[0][0] = red
	if g.Count(white) != 4 {
		t.Errorf("Mutating Rows() changed the grid")
	}
}

// TestClearKeepsShape verifies Clear preserves dimensions and layout
func TestClearKeepsShape(t *testing.T) {
	g := walledGrid(t, hex.LayoutTwoRow)
	c := Clear(g, DefaultColor)

	if c.Height() != 3 || c.Width() != 5 || c.Layout() != hex.LayoutTwoRow {
		t.Errorf("Clear changed shape: %dx%d %v", c.Height(), c.Width(), c.Layout())
	}
	if c.Count(DefaultColor) != 15 {
		t.Errorf("Expected every cell cleared")
	}
}

// TestEqual covers shape, layout and content differences
func TestEqual(t *testing.T) {
	a := New(2, 2, hex.LayoutOffsetRows, white)
	b := New(2, 2, hex.LayoutOffsetRows, white)
	if !a.Equal(b) {
		t.Error("Identical grids reported unequal")
	}
	if a.Equal(a.WithLayout(hex.LayoutCube)) {
		t.Error("Grids with different layouts reported equal")
	}
	if a.Equal(New(2, 3, hex.LayoutOffsetRows, white)) {
		t.Error("Grids with different widths reported equal")
	}
	p, _ := Paint(a, hex.Coord{Row: 1, Col: 1}, red)
	if a.Equal(p) {
		t.Error("Grids with different cells reported equal")
	}
}

// TestStringIndentsOddRows checks the text dump
func TestStringIndentsOddRows(t *testing.T) {
	g := New(2, 1, hex.LayoutOffsetRows, white)
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != string(white) || lines[1] != "   "+string(white) {
		t.Errorf("Unexpected dump: %q", lines)
	}
}
