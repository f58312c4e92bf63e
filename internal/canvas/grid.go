// Package canvas holds the colour grid and the operations that replace it:
// paint, flood fill, clear and applying a generated pattern.
// A Grid is never modified after construction; every operation returns a
// new Grid, sharing untouched rows with its input.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/talgya/hexcanvas/internal/hex"
)

var (
	// ErrOutOfBounds is returned for cell access outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrDimensions is returned when rows do not match the expected shape.
	ErrDimensions = errors.New("grid dimensions mismatch")
)

// Color is an opaque colour value, normally a "#RRGGBB" string.
type Color string

// Grid is a rectangular, immutable array of cell colours.
type Grid struct {
	layout hex.Layout
	width  int
	rows   [][]Color
}

// New creates a height x width grid with every cell set to fill.
func New(height, width int, layout hex.Layout, fill Color) *Grid {
	row := make([]Color, width)
	for i := range row {
		row[i] = fill
	}
	rows := make([][]Color, height)
	for i := range rows {
		// Rows are read-only once built, so one backing row can be shared.
		rows[i] = row
	}
	return &Grid{layout: layout, width: width, rows: rows}
}

// FromRows builds a grid from nested rows, rejecting any shape other than
// height x width. The rows are copied.
func FromRows(rows [][]Color, height, width int, layout hex.Layout) (*Grid, error) {
	if len(rows) != height {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrDimensions, len(rows), height)
	}
	copied := make([][]Color, height)
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensions, i, len(row), width)
		}
		copied[i] = append([]Color(nil), row...)
	}
	return &Grid{layout: layout, width: width, rows: copied}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Layout returns the adjacency convention of the grid.
func (g *Grid) Layout() hex.Layout { return g.layout }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c hex.Coord) bool {
	return c.Row >= 0 && c.Row < len(g.rows) && c.Col >= 0 && c.Col < g.width
}

// At returns the colour at c. The caller must pass an in-bounds coordinate.
func (g *Grid) At(c hex.Coord) Color {
	return g.rows[c.Row][c.Col]
}

// Rows returns a deep copy of the cells.
func (g *Grid) Rows() [][]Color {
	out := make([][]Color, len(g.rows))
	for i, row := range g.rows {
		out[i] = append([]Color(nil), row...)
	}
	return out
}

// Strings returns the cells as nested strings, the persisted form.
func (g *Grid) Strings() [][]string {
	out := make([][]string, len(g.rows))
	for i, row := range g.rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}
	return out
}

// Count returns how many cells hold color.
func (g *Grid) Count(color Color) int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c == color {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids have the same shape, layout and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.layout != o.layout || g.width != o.width || len(g.rows) != len(o.rows) {
		return false
	}
	for i := range g.rows {
		for j := range g.rows[i] {
			if g.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders the grid one row per line, indenting odd rows.
func (g *Grid) String() string {
	var b strings.Builder
	for i, row := range g.rows {
		if i%2 == 1 {
			b.WriteString("   ")
		}
		for j, c := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WithLayout returns a grid with the same cells under another layout.
func (g *Grid) WithLayout(layout hex.Layout) *Grid {
	if layout == g.layout {
		return g
	}
	return &Grid{layout: layout, width: g.width, rows: g.rows}
}

// Paint returns a copy of g with the cell at c set to color. Only the
// touched row is copied.
func Paint(g *Grid, c hex.Coord, color Color) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("paint (%d, %d): %w", c.Row, c.Col, ErrOutOfBounds)
	}
	rows := make([][]Color, len(g.rows))
	copy(rows, g.rows)
	row := append([]Color(nil), g.rows[c.Row]...)
	row[c.Col] = color
	rows[c.Row] = row
	return &Grid{layout: g.layout, width: g.width, rows: rows}, nil
}

// Clear returns a grid of the same shape and layout filled with color.
func Clear(g *Grid, color Color) *Grid {
	return New(g.Height(), g.Width(), g.layout, color)
}

// clone returns a deep, writable copy of the cells.
func (g *Grid) clone() [][]Color {
	return g.Rows()
}
