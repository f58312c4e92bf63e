package canvas

import (
	"fmt"

	"github.com/talgya/hexcanvas/internal/hex"
)

// FloodFill recolours the connected region of cells sharing the colour of
// start, using the grid's layout for adjacency. When the start colour
// already equals replacement the input grid is returned as is.
func FloodFill(g *Grid, start hex.Coord, replacement Color) (*Grid, error) {
	if !g.InBounds(start) {
		return nil, fmt.Errorf("flood fill (%d, %d): %w", start.Row, start.Col, ErrOutOfBounds)
	}

	target := g.At(start)
	if target == replacement {
		return g, nil
	}

	height, width := g.Height(), g.Width()
	work := g.clone()
	queue := []hex.Coord{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		// A cell may be queued by several neighbors; only the first visit recolours it.
		if work[c.Row][c.Col] != target {
			continue
		}
		work[c.Row][c.Col] = replacement

		for _, n := range hex.Neighbors(c, g.layout, height, width) {
			if work[n.Row][n.Col] == target {
				queue = append(queue, n)
			}
		}
	}

	return &Grid{layout: g.layout, width: width, rows: work}, nil
}

// Region returns the cells of the connected region containing start,
// in visit order. It shares FloodFill's traversal and is used for previews.
func Region(g *Grid, start hex.Coord) []hex.Coord {
	if !g.InBounds(start) {
		return nil
	}
	target := g.At(start)
	seen := map[hex.Coord]bool{start: true}
	queue := []hex.Coord{start}
	var region []hex.Coord

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		region = append(region, c)

		for _, n := range hex.Neighbors(c, g.layout, g.Height(), g.Width()) {
			if !seen[n] && g.At(n) == target {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return region
}
