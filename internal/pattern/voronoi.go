package pattern

import (
	"math/rand"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// Seed is a Voronoi site: a cell and the colour its region takes.
type Seed struct {
	At    hex.Coord
	Color canvas.Color
}

// RandomSeeds draws min(n, len(colors)) seeds. Each seed draws its row,
// column and colour in that order; positions and colours may repeat.
func RandomSeeds(rng *rand.Rand, dims Dims, colors []canvas.Color, n int) []Seed {
	if n <= 0 {
		n = DefaultRegions
	}
	n = min(n, len(colors))

	seeds := make([]Seed, 0, n)
	for i := 0; i < n; i++ {
		row := rng.Intn(dims.Height)
		col := rng.Intn(dims.Width)
		color := colors[rng.Intn(len(colors))]
		seeds = append(seeds, Seed{At: hex.Coord{Row: row, Col: col}, Color: color})
	}
	return seeds
}

// Nearest returns the seed closest to c by hex distance. Ties go to the
// earliest seed. seeds must not be empty.
func Nearest(seeds []Seed, c hex.Coord) Seed {
	best := seeds[0]
	bestDist := hex.Distance(c, best.At)
	for _, s := range seeds[1:] {
		if d := hex.Distance(c, s.At); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// Voronoi partitions the grid into regions around random seeds, colouring
// each cell with its nearest seed's colour. Any palette entry may be used.
func Voronoi(rng *rand.Rand, dims Dims, colors []canvas.Color, numRegions int) (*canvas.Grid, error) {
	if err := dims.validate(); err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, canvas.ErrEmptyPalette
	}
	seeds := RandomSeeds(rng, dims, colors, numRegions)
	return PaintVoronoi(dims, seeds)
}

// PaintVoronoi colours a grid from a fixed set of seeds.
func PaintVoronoi(dims Dims, seeds []Seed) (*canvas.Grid, error) {
	if len(seeds) == 0 {
		return nil, canvas.ErrEmptyPalette
	}
	rows := make([][]canvas.Color, dims.Height)
	for row := range rows {
		rows[row] = make([]canvas.Color, dims.Width)
		for col := range rows[row] {
			rows[row][col] = Nearest(seeds, hex.Coord{Row: row, Col: col}).Color
		}
	}
	return build(rows, dims)
}
