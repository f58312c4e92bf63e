package pattern

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// Noise sampling parameters, in hex-size units.
const (
	noiseOctaves     = 3
	noiseFrequency   = 0.18
	noisePersistence = 0.5
)

// Noise colours the grid in bands of layered simplex noise sampled at
// each cell's center. numBands colours are picked from the palette's fill
// entries (or the whole palette when it has no neutrals).
func Noise(rng *rand.Rand, dims Dims, palette canvas.Palette, numBands int) (*canvas.Grid, error) {
	if err := dims.validate(); err != nil {
		return nil, err
	}
	colors := []canvas.Color(palette)
	if palette.HasNeutrals() {
		colors = palette.Fill()
	}
	if len(colors) == 0 {
		return nil, canvas.ErrEmptyPalette
	}
	if numBands <= 0 {
		numBands = DefaultBands
	}
	numBands = min(numBands, len(colors))

	// Draw the noise seed first, then the band colours.
	field := opensimplex.NewNormalized(rng.Int63())
	bands := make([]canvas.Color, numBands)
	for i, j := range rng.Perm(len(colors))[:numBands] {
		bands[i] = colors[j]
	}

	rows := make([][]canvas.Color, dims.Height)
	for row := range rows {
		rows[row] = make([]canvas.Color, dims.Width)
		for col := range rows[row] {
			p := hex.CubeToPixel(hex.ToCube(row, col), 1)
			rows[row][col] = bands[bandAt(field, p.X, p.Y, numBands)]
		}
	}
	return build(rows, dims)
}

// bandAt sums noiseOctaves layers of the normalized field at (x, y), each
// at twice the frequency and noisePersistence times the weight of the
// last, and returns which of n equal bands the weighted mean falls in.
func bandAt(field opensimplex.Noise, x, y float64, n int) int {
	var sum, weight float64
	amp, freq := 1.0, noiseFrequency
	for i := 0; i < noiseOctaves; i++ {
		sum += amp * field.Eval2(x*freq, y*freq)
		weight += amp
		amp *= noisePersistence
		freq *= 2
	}
	return min(max(int(sum/weight*float64(n)), 0), n-1)
}
