package main

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/entropy"
	"github.com/talgya/hexcanvas/internal/pattern"
)

// generator applies pattern generators to the canvas. Each call takes the
// next seed from the source and logs it so a grid can be reproduced.
type generator struct {
	canvas  *canvas.Canvas
	source  *entropy.Source
	palette canvas.Palette
	dims    pattern.Dims
	counts  map[pattern.Kind]int
}

// Generate replaces the canvas with a freshly generated pattern.
func (g *generator) Generate(kind pattern.Kind) error {
	seed, rng := g.source.Next()
	grid, err := pattern.Generate(kind, rng, g.dims, g.palette, g.counts[kind])
	if err != nil {
		return err
	}
	if err := g.canvas.Apply(grid); err != nil {
		return fmt.Errorf("apply %s: %w", kind, err)
	}
	slog.Info("pattern generated", "pattern", kind, "seed", seed)
	return nil
}
