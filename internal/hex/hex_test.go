package hex

import (
	"math"
	"testing"
)

// TestGridCubeRoundTrip verifies ToGrid inverts ToCube for every cell
func TestGridCubeRoundTrip(t *testing.T) {
	for row := 0; row < 20; row++ {
		for col := 0; col < 20; col++ {
			c := ToCube(row, col)
			if !c.Valid() {
				t.Fatalf("ToCube(%d, %d) = %+v breaks q+r+s=0", row, col, c)
			}
			got := ToGrid(c.Q, c.R)
			if got != (Coord{Row: row, Col: col}) {
				t.Errorf("Expected (%d, %d) after round trip, got %+v", row, col, got)
			}
		}
	}
}

// TestToCubeNegativeRows checks floor semantics on rows reached by neighbor arithmetic
func TestToCubeNegativeRows(t *testing.T) {
	tests := []struct {
		row, col int
		want     Cube
	}{
		{row: -1, col: 0, want: Cube{Q: 1, R: -1, S: 0}},
		{row: -2, col: 3, want: Cube{Q: 4, R: -2, S: -2}},
		{row: 3, col: 2, want: Cube{Q: 1, R: 3, S: -4}},
	}

	for _, tt := range tests {
		got := ToCube(tt.row, tt.col)
		if got != tt.want {
			t.Errorf("ToCube(%d, %d): expected %+v, got %+v", tt.row, tt.col, tt.want, got)
		}
		if back := ToGrid(got.Q, got.R); back != (Coord{Row: tt.row, Col: tt.col}) {
			t.Errorf("ToGrid(%d, %d): expected (%d, %d), got %+v", got.Q, got.R, tt.row, tt.col, back)
		}
	}
}

// TestRoundToNearestHexFixedPoint verifies exact hexes round to themselves
func TestRoundToNearestHexFixedPoint(t *testing.T) {
	for q := -6; q <= 6; q++ {
		for r := -6; r <= 6; r++ {
			want := Cube{Q: q, R: r, S: -q - r}
			got := RoundToNearestHex(FracCube{Q: float64(q), R: float64(r), S: float64(-q - r)})
			if got != want {
				t.Errorf("Expected %+v unchanged, got %+v", want, got)
			}
		}
	}
}

// TestRoundToNearestHexCorrection checks which component gets recomputed
func TestRoundToNearestHexCorrection(t *testing.T) {
	tests := []struct {
		name string
		in   FracCube
		want Cube
	}{
		{
			name: "q has largest error",
			in:   FracCube{Q: 0.4, R: 0.3, S: -0.7},
			want: Cube{Q: 1, R: 0, S: -1},
		},
		{
			name: "r has largest error",
			in:   FracCube{Q: 0.2, R: -0.45, S: 0.25},
			want: Cube{Q: 0, R: 0, S: 0},
		},
		{
			name: "q and r tie, r is fixed",
			in:   FracCube{Q: 0.5, R: -0.5, S: 0},
			want: Cube{Q: 1, R: -1, S: 0},
		},
		{
			name: "q and s tie, s is fixed",
			in:   FracCube{Q: 0.5, R: 0, S: -0.5},
			want: Cube{Q: 1, R: 0, S: -1},
		},
		{
			name: "all equal, s is fixed",
			in:   FracCube{Q: 1.0 / 3, R: 1.0 / 3, S: -2.0 / 3},
			want: Cube{Q: 0, R: 0, S: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundToNearestHex(tt.in)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
			if !got.Valid() {
				t.Errorf("Result %+v breaks q+r+s=0", got)
			}
		})
	}
}

// TestPixelInverse verifies PixelToCube undoes CubeToPixel
func TestPixelInverse(t *testing.T) {
	const tolerance = 1e-9
	for _, size := range []float64{1, 7.5, 30} {
		for row := 0; row < 10; row++ {
			for col := 0; col < 10; col++ {
				c := ToCube(row, col)
				f := PixelToCube(CubeToPixel(c, size), size)
				if math.Abs(f.Q-float64(c.Q)) > tolerance ||
					math.Abs(f.R-float64(c.R)) > tolerance ||
					math.Abs(f.S-float64(c.S)) > tolerance {
					t.Errorf("size %v: expected %+v, got %+v", size, c, f)
				}
				if got := PixelToCoord(CubeToPixel(c, size), size); got != (Coord{Row: row, Col: col}) {
					t.Errorf("size %v: expected (%d, %d), got %+v", size, row, col, got)
				}
			}
		}
	}
}

// TestPixelToCoordInsideHex checks off-center points resolve to the containing hex
func TestPixelToCoordInsideHex(t *testing.T) {
	const size = 10.0
	center := CubeToPixel(ToCube(4, 3), size)
	offsets := []Point{{X: 0.7 * size, Y: 0}, {X: -0.7 * size, Y: 0}, {X: 0, Y: 0.8 * size}, {X: 0.3 * size, Y: -0.5 * size}}

	for _, off := range offsets {
		got := PixelToCoord(Point{X: center.X + off.X, Y: center.Y + off.Y}, size)
		if got != (Coord{Row: 4, Col: 3}) {
			t.Errorf("offset %+v: expected (4, 3), got %+v", off, got)
		}
	}
}

// TestPolygonVertices verifies vertex angles and radius
func TestPolygonVertices(t *testing.T) {
	pts := PolygonVertices(2)
	if math.Abs(pts[0].X-2) > 1e-12 || math.Abs(pts[0].Y) > 1e-12 {
		t.Errorf("Expected first vertex (2, 0), got %+v", pts[0])
	}
	if math.Abs(pts[3].X+2) > 1e-12 || math.Abs(pts[3].Y) > 1e-12 {
		t.Errorf("Expected fourth vertex (-2, 0), got %+v", pts[3])
	}
	for i, p := range pts {
		if d := math.Hypot(p.X, p.Y); math.Abs(d-2) > 1e-12 {
			t.Errorf("Vertex %d at radius %v, expected 2", i, d)
		}
	}
}

// TestDistanceProperties checks identity, symmetry and the triangle inequality
func TestDistanceProperties(t *testing.T) {
	var cells []Coord
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			cells = append(cells, Coord{Row: row, Col: col})
		}
	}

	for _, a := range cells {
		if d := Distance(a, a); d != 0 {
			t.Errorf("Distance(%+v, itself) = %d, expected 0", a, d)
		}
		for _, b := range cells {
			ab := Distance(a, b)
			if ab < 0 {
				t.Fatalf("Distance(%+v, %+v) negative: %d", a, b, ab)
			}
			if ba := Distance(b, a); ab != ba {
				t.Errorf("Distance not symmetric for %+v, %+v: %d vs %d", a, b, ab, ba)
			}
			for _, c := range cells {
				if Distance(a, c) > ab+Distance(b, c) {
					t.Errorf("Triangle inequality fails for %+v, %+v, %+v", a, b, c)
				}
			}
		}
	}
}

// TestDistanceKnownValues pins a few distances
func TestDistanceKnownValues(t *testing.T) {
	tests := []struct {
		a, b Coord
		want int
	}{
		{a: Coord{0, 0}, b: Coord{0, 3}, want: 3},
		{a: Coord{0, 0}, b: Coord{2, 1}, want: 2},
		{a: Coord{1, 0}, b: Coord{0, 0}, want: 1},
		{a: Coord{0, 0}, b: Coord{4, 0}, want: 4},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%+v, %+v): expected %d, got %d", tt.a, tt.b, tt.want, got)
		}
	}
}

// TestCubeMax verifies the infinity norm
func TestCubeMax(t *testing.T) {
	if got := (Cube{Q: 2, R: -5, S: 3}).Max(); got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	if got := (Cube{}).Max(); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}
