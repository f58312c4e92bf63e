// Package view is a terminal front end for the canvas: it draws the grid
// with tcell and turns key and mouse input into canvas operations.
package view

import (
	"math"

	"github.com/talgya/hexcanvas/internal/hex"
)

// offGrid is returned by CellAt for terminal cells that no hex covers.
var offGrid = hex.Coord{Row: -1, Col: -1}

// Transform maps between terminal cells and the canvas drawing space.
// Each hex is two characters wide and placement follows the grid layout,
// so cells drawn next to each other are exactly the layout's neighbors:
//
//	offset rows: one row per line, even rows shifted one character right
//	two-row:     one row per line, columns four characters apart, odd rows shifted two
//	cube:        screen x = 2q, screen y = 2r + q, before the origin shift
type Transform struct {
	Layout  hex.Layout
	HexSize float64
	OriginX int
	OriginY int
}

// Cube scales put every hex center on a whole terminal cell.
func (t Transform) scaleX() float64 { return 4.0 / (3.0 * t.HexSize) }
func (t Transform) scaleY() float64 { return 2.0 / (math.Sqrt(3.0) * t.HexSize) }

// ToScreen returns the terminal cell of a drawing-space point.
func (t Transform) ToScreen(p hex.Point) (int, int) {
	x := float64(t.OriginX) + p.X*t.scaleX()
	y := float64(t.OriginY) + p.Y*t.scaleY()
	return int(math.Round(x)), int(math.Round(y))
}

// ToLocal maps a terminal cell back into drawing space.
func (t Transform) ToLocal(x, y int) hex.Point {
	return hex.Point{
		X: float64(x-t.OriginX) / t.scaleX(),
		Y: float64(y-t.OriginY) / t.scaleY(),
	}
}

// CellOrigin returns where the first character of a cell is drawn.
func (t Transform) CellOrigin(c hex.Coord) (int, int) {
	odd := c.Row & 1
	switch t.Layout {
	case hex.LayoutOffsetRows:
		return t.OriginX + 2*c.Col + 1 - odd, t.OriginY + c.Row
	case hex.LayoutTwoRow:
		return t.OriginX + 4*c.Col + 2*odd, t.OriginY + c.Row
	default:
		return t.ToScreen(hex.CubeToPixel(c.Cube(), t.HexSize))
	}
}

// CellAt resolves the terminal position under the pointer to a storage
// coordinate. The result is not bounds checked.
func (t Transform) CellAt(x, y int) hex.Coord {
	row := y - t.OriginY
	odd := row & 1
	switch t.Layout {
	case hex.LayoutOffsetRows:
		return hex.Coord{Row: row, Col: floorDiv(x-t.OriginX-1+odd, 2)}
	case hex.LayoutTwoRow:
		lx := x - t.OriginX - 2*odd
		col := floorDiv(lx, 4)
		if lx-4*col >= 2 {
			return offGrid
		}
		return hex.Coord{Row: row, Col: col}
	default:
		return hex.PixelToCoord(t.ToLocal(x, y), t.HexSize)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Fit returns a transform whose drawing of a height x width grid starts
// margin cells from the top-left corner, along with the extent of the
// drawing in terminal cells.
func Fit(height, width int, layout hex.Layout, hexSize float64, margin int) (Transform, int, int) {
	t := Transform{Layout: layout, HexSize: hexSize}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			x, y := t.CellOrigin(hex.Coord{Row: row, Col: col})
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	t.OriginX = margin - minX
	t.OriginY = margin - minY
	// Cells are two characters wide.
	return t, maxX - minX + 2, maxY - minY + 1
}
