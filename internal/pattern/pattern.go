// Package pattern seeds a canvas with procedurally generated grids.
// All generators take an explicit random source so a fixed seed
// reproduces the same grid.
package pattern

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// ErrUnknownPattern is returned for a pattern name with no generator.
var ErrUnknownPattern = errors.New("unknown pattern")

// Default counts when the caller passes n <= 0.
const (
	DefaultRegions = 5
	DefaultShapes  = 6
	DefaultBands   = 5
)

// Dims describes the grid a generator fills.
type Dims struct {
	Height int
	Width  int
	Layout hex.Layout
}

func (d Dims) validate() error {
	if d.Height <= 0 || d.Width <= 0 {
		return fmt.Errorf("%w: %dx%d", canvas.ErrDimensions, d.Height, d.Width)
	}
	return nil
}

// Kind names a generator.
type Kind string

const (
	KindVoronoi Kind = "voronoi"
	KindShapes  Kind = "shapes"
	KindNoise   Kind = "noise"
)

// Generator builds a grid from a random source, the grid shape, the
// palette and a generator-specific count.
type Generator func(rng *rand.Rand, dims Dims, palette canvas.Palette, n int) (*canvas.Grid, error)

var generators = map[Kind]Generator{
	KindVoronoi: func(rng *rand.Rand, dims Dims, palette canvas.Palette, n int) (*canvas.Grid, error) {
		return Voronoi(rng, dims, palette, n)
	},
	KindShapes: Shapes,
	KindNoise:  Noise,
}

// Kinds lists the available generators in display order.
func Kinds() []Kind {
	return []Kind{KindVoronoi, KindShapes, KindNoise}
}

// ParseKind resolves a generator name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := generators[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return k, nil
}

// Generate runs the generator registered for kind.
func Generate(kind Kind, rng *rand.Rand, dims Dims, palette canvas.Palette, n int) (*canvas.Grid, error) {
	gen, ok := generators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, kind)
	}
	g, err := gen(rng, dims, palette, n)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", kind, err)
	}
	return g, nil
}

// newRows allocates a height x width block of fill.
func newRows(dims Dims, fill canvas.Color) [][]canvas.Color {
	rows := make([][]canvas.Color, dims.Height)
	for i := range rows {
		rows[i] = make([]canvas.Color, dims.Width)
		for j := range rows[i] {
			rows[i][j] = fill
		}
	}
	return rows
}

func build(rows [][]canvas.Color, dims Dims) (*canvas.Grid, error) {
	return canvas.FromRows(rows, dims.Height, dims.Width, dims.Layout)
}
