package hex

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned when a layout name cannot be parsed.
var ErrUnknownLayout = errors.New("unknown layout")

// Layout selects the adjacency convention of a grid. A grid keeps one
// layout for its whole lifetime.
type Layout uint8

const (
	LayoutOffsetRows Layout = iota // Row parity shifts the row by half a cell
	LayoutTwoRow                   // Interleaved, vertically compressed rows
	LayoutCube                     // Unit steps in cube space
)

// Offset-row neighbor steps, indexed by row parity.
var offsetRowSteps = [2][6]Coord{
	{ // even row
		{Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	},
	{ // odd row
		{Row: -1, Col: -1}, {Row: -1, Col: 0},
		{Row: 0, Col: -1}, {Row: 0, Col: 1},
		{Row: 1, Col: -1}, {Row: 1, Col: 0},
	},
}

// Two-row neighbor steps, indexed by row parity. Vertical neighbors sit two
// rows away in the same column; odd rows fall between columns c and c+1.
var twoRowSteps = [2][6]Coord{
	{ // even row
		{Row: -2, Col: 0}, {Row: 2, Col: 0},
		{Row: -1, Col: -1}, {Row: -1, Col: 0},
		{Row: 1, Col: -1}, {Row: 1, Col: 0},
	},
	{ // odd row
		{Row: -2, Col: 0}, {Row: 2, Col: 0},
		{Row: -1, Col: 0}, {Row: -1, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	},
}

// Neighbors returns the in-bounds neighbors of c on a height x width grid.
// Interior cells have six neighbors under every layout; positions outside
// [0,height) x [0,width) are dropped, never wrapped.
func Neighbors(c Coord, layout Layout, height, width int) []Coord {
	result := make([]Coord, 0, 6)
	for _, n := range layout.adjacent(c) {
		if n.Row >= 0 && n.Row < height && n.Col >= 0 && n.Col < width {
			result = append(result, n)
		}
	}
	return result
}

// adjacent returns all six neighbors of c, ignoring bounds.
func (l Layout) adjacent(c Coord) [6]Coord {
	var result [6]Coord
	switch l {
	case LayoutOffsetRows:
		for i, d := range offsetRowSteps[c.Row&1] {
			result[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		}
	case LayoutTwoRow:
		for i, d := range twoRowSteps[c.Row&1] {
			result[i] = Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		}
	case LayoutCube:
		origin := c.Cube()
		for i, d := range CubeDirections {
			n := origin.Add(d)
			result[i] = ToGrid(n.Q, n.R)
		}
	default:
		panic(fmt.Sprintf("hex: unknown layout %d", l))
	}
	return result
}

// String returns the configuration name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutOffsetRows:
		return "offset"
	case LayoutTwoRow:
		return "tworow"
	case LayoutCube:
		return "cube"
	default:
		return "unknown"
	}
}

// ParseLayout resolves a configuration name. The empty string selects the
// default offset-row layout.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "offset", "offset-rows":
		return LayoutOffsetRows, nil
	case "tworow", "two-row":
		return LayoutTwoRow, nil
	case "cube", "axial":
		return LayoutCube, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
}
