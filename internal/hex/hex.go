// Package hex provides the coordinate spaces of the hexagonal canvas.
// Storage uses (row, col) offset coordinates; neighbor and distance math
// runs in cube coordinates (q, r, s) with q + r + s = 0; rendering uses
// continuous pixel space.
package hex

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Coord is a storage position on the rectangular grid, 0-indexed.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cube is an exact hex position in cube coordinates.
type Cube struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// FracCube is a continuous cube coordinate, typically derived from a pointer
// position before rounding.
type FracCube struct {
	Q, R, S float64
}

// Point is a position in the continuous drawing space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CubeDirections defines the six unit steps in cube space.
var CubeDirections = [6]Cube{
	{Q: 1, R: -1, S: 0},
	{Q: -1, R: 1, S: 0},
	{Q: 1, R: 0, S: -1},
	{Q: -1, R: 0, S: 1},
	{Q: 0, R: 1, S: -1},
	{Q: 0, R: -1, S: 1},
}

// Add returns the component-wise sum.
func (c Cube) Add(o Cube) Cube {
	return Cube{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Sub returns the component-wise difference.
func (c Cube) Sub(o Cube) Cube {
	return Cube{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

// Max returns the infinity norm max(|q|, |r|, |s|).
func (c Cube) Max() int {
	return max(abs(c.Q), abs(c.R), abs(c.S))
}

// Valid reports whether the zero-sum invariant holds.
func (c Cube) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// ToCube converts a storage position to cube coordinates.
func ToCube(row, col int) Cube {
	q := col - floorHalf(row)
	r := row
	return Cube{Q: q, R: r, S: -q - r}
}

// ToGrid converts cube coordinates back to a storage position.
// The third cube coordinate is implied by q and r.
func ToGrid(q, r int) Coord {
	return Coord{Row: r, Col: q + floorHalf(r)}
}

// Cube returns the cube coordinate of c.
func (c Coord) Cube() Cube {
	return ToCube(c.Row, c.Col)
}

// CubeToPixel returns the center of a hex in drawing space.
func CubeToPixel(c Cube, size float64) Point {
	q, r := float64(c.Q), float64(c.R)
	return Point{
		X: size * 3.0 / 2.0 * q,
		Y: size * math.Sqrt(3.0) * (r + q/2.0),
	}
}

// PixelToCube is the algebraic inverse of CubeToPixel. The result is
// continuous; use RoundToNearestHex to resolve a cell.
func PixelToCube(p Point, size float64) FracCube {
	q := (2.0 / 3.0 * p.X) / size
	r := (-1.0/3.0*p.X + math.Sqrt(3.0)/3.0*p.Y) / size
	return FracCube{Q: q, R: r, S: -q - r}
}

// RoundToNearestHex rounds each component and then recomputes the one with
// the largest rounding error from the other two. Ties resolve q, then r,
// then s, following the comparison order below.
func RoundToNearestHex(f FracCube) Cube {
	rq := math.Round(f.Q)
	rr := math.Round(f.R)
	rs := math.Round(f.S)

	qDiff := math.Abs(rq - f.Q)
	rDiff := math.Abs(rr - f.R)
	sDiff := math.Abs(rs - f.S)

	if qDiff > rDiff && qDiff > sDiff {
		rq = -rr - rs
	} else if rDiff > sDiff {
		rr = -rq - rs
	} else {
		rs = -rq - rr
	}

	return Cube{Q: int(rq), R: int(rr), S: int(rs)}
}

// PixelToCoord resolves a drawing-space point to the storage position of
// the hex containing it. The result may lie outside any particular grid.
func PixelToCoord(p Point, size float64) Coord {
	c := RoundToNearestHex(PixelToCube(p, size))
	return ToGrid(c.Q, c.R)
}

// PolygonVertices returns the six corners of a hex of the given radius,
// centred on the origin, at angles i*60 degrees.
func PolygonVertices(size float64) [6]Point {
	var pts [6]Point
	for i := range pts {
		angle := float64(i) * math.Pi / 3
		pts[i] = Point{X: size * math.Cos(angle), Y: size * math.Sin(angle)}
	}
	return pts
}

// Distance returns the number of adjacency steps between two storage
// positions, measured in cube space.
func Distance(a, b Coord) int {
	d := a.Cube().Sub(b.Cube())
	return (abs(d.Q) + abs(d.R) + abs(d.S)) / 2
}

// floorHalf is floor(n/2), also for negative n.
func floorHalf(n int) int {
	return n >> 1
}

func abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
