package pattern

import (
	"fmt"
	"math/rand"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// ShapeKind enumerates the drawable shapes.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeHexagon
	ShapeTriangle

	numShapeKinds = 3
)

// Size range for generated shapes, inclusive.
const (
	MinShapeSize = 2
	MaxShapeSize = 5
)

// Orientations is the number of triangle orientations.
const Orientations = 6

// String returns the shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeHexagon:
		return "hexagon"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape describes one painted shape. Orientation is only used by triangles.
type Shape struct {
	Kind        ShapeKind
	Center      hex.Coord
	Size        int
	Color       canvas.Color
	Orientation int
}

// Contains reports whether cell c lies inside the shape.
func (s Shape) Contains(c hex.Coord) bool {
	switch s.Kind {
	case ShapeCircle:
		return hex.Distance(c, s.Center) <= s.Size
	case ShapeHexagon:
		return c.Cube().Sub(s.Center.Cube()).Max() < s.Size
	case ShapeTriangle:
		return inTriangle(c.Cube().Sub(s.Center.Cube()), s.Size, s.Orientation)
	default:
		panic(fmt.Sprintf("pattern: unknown shape kind %d", s.Kind))
	}
}

// inTriangle tests a cube offset d against one of six orientations.
// Orientation 0 points up: r <= 0, r >= -n, q >= -n, s >= -n. Pairs of
// orientations rotate the roles of q, r and s; odd orientations mirror
// every inequality.
func inTriangle(d hex.Cube, n, orientation int) bool {
	if orientation < 0 || orientation >= Orientations {
		panic(fmt.Sprintf("pattern: unknown triangle orientation %d", orientation))
	}
	var a, b, c int
	switch orientation / 2 {
	case 0:
		a, b, c = d.R, d.Q, d.S
	case 1:
		a, b, c = d.S, d.R, d.Q
	default:
		a, b, c = d.Q, d.S, d.R
	}
	if orientation%2 == 1 {
		a, b, c = -a, -b, -c
	}
	return a <= 0 && a >= -n && b >= -n && c >= -n
}

// RandomShape draws the kind, colour, center row, center column, size and,
// for triangles, orientation, in that order.
func RandomShape(rng *rand.Rand, dims Dims, fill []canvas.Color) Shape {
	s := Shape{
		Kind:  ShapeKind(rng.Intn(numShapeKinds)),
		Color: fill[rng.Intn(len(fill))],
	}
	s.Center = hex.Coord{Row: rng.Intn(dims.Height), Col: rng.Intn(dims.Width)}
	s.Size = MinShapeSize + rng.Intn(MaxShapeSize-MinShapeSize+1)
	if s.Kind == ShapeTriangle {
		s.Orientation = rng.Intn(Orientations)
	}
	return s
}

// PaintShape overwrites every cell inside s.
func PaintShape(rows [][]canvas.Color, s Shape) {
	for row := range rows {
		for col := range rows[row] {
			if s.Contains(hex.Coord{Row: row, Col: col}) {
				rows[row][col] = s.Color
			}
		}
	}
}

// Shapes paints numShapes random shapes over the palette's light gray
// background. Shape colours exclude the reserved neutrals; later shapes
// cover earlier ones.
func Shapes(rng *rand.Rand, dims Dims, palette canvas.Palette, numShapes int) (*canvas.Grid, error) {
	if err := dims.validate(); err != nil {
		return nil, err
	}
	if !palette.HasNeutrals() {
		return nil, fmt.Errorf("shapes need more than %d colours: %w", canvas.ReservedNeutrals, canvas.ErrEmptyPalette)
	}
	if numShapes <= 0 {
		numShapes = DefaultShapes
	}

	rows := newRows(dims, palette.Background())
	fill := palette.Fill()
	for i := 0; i < numShapes; i++ {
		PaintShape(rows, RandomShape(rng, dims, fill))
	}
	return build(rows, dims)
}
