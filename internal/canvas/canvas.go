package canvas

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/talgya/hexcanvas/internal/hex"
)

// Mode selects what a click does.
type Mode uint8

const (
	ModePaint Mode = iota // Click and drag paint single cells
	ModeFill              // The next click flood fills, then reverts to paint
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeFill:
		return "fill"
	default:
		return "unknown"
	}
}

// Canvas owns the current grid. Readers call Grid at any time and always
// see a complete grid; writers replace it with a single atomic swap.
type Canvas struct {
	grid atomic.Pointer[Grid]

	mu       sync.Mutex
	palette  Palette
	selected Color
	mode     Mode
	blank    Color

	// OnChange is called with every new grid after it becomes current.
	OnChange func(*Grid)
}

// NewCanvas wraps an initial grid. blank is the colour used by Clear.
func NewCanvas(initial *Grid, palette Palette, blank Color) *Canvas {
	c := &Canvas{
		palette: palette,
		blank:   blank,
		mode:    ModePaint,
	}
	if len(palette) > 0 {
		c.selected = palette[0]
	}
	c.grid.Store(initial)
	return c
}

// Grid returns the current grid.
func (c *Canvas) Grid() *Grid {
	return c.grid.Load()
}

// Palette returns the selectable colours.
func (c *Canvas) Palette() Palette {
	return c.palette
}

// Selected returns the colour used by paint and fill.
func (c *Canvas) Selected() Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Select makes color the active colour.
func (c *Canvas) Select(color Color) {
	c.mu.Lock()
	c.selected = color
	c.mu.Unlock()
}

// Mode returns the current draw mode.
func (c *Canvas) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode switches the draw mode.
func (c *Canvas) SetMode(m Mode) {
	c.mu.Lock()
	c.mode = m
	c.mu.Unlock()
}

// Click applies the current mode at the given cell. Out-of-bounds clicks
// are ignored. In fill mode the canvas returns to paint mode afterwards.
func (c *Canvas) Click(at hex.Coord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.grid.Load()
	if !g.InBounds(at) {
		slog.Debug("ignoring click outside grid", "row", at.Row, "col", at.Col)
		return
	}

	switch c.mode {
	case ModePaint:
		next, err := Paint(g, at, c.selected)
		if err != nil {
			slog.Debug("paint failed", "error", err)
			return
		}
		c.replace(next)
	case ModeFill:
		next, err := FloodFill(g, at, c.selected)
		if err != nil {
			slog.Debug("flood fill failed", "error", err)
			return
		}
		if next != g {
			c.replace(next)
		}
		c.mode = ModePaint
	default:
		panic(fmt.Sprintf("canvas: unknown mode %d", c.mode))
	}
}

// Drag paints at the cell under a held pointer. It does nothing outside
// paint mode or outside the grid, and skips cells already painted.
func (c *Canvas) Drag(at hex.Coord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.grid.Load()
	if c.mode != ModePaint || !g.InBounds(at) || g.At(at) == c.selected {
		return
	}
	next, err := Paint(g, at, c.selected)
	if err != nil {
		return
	}
	c.replace(next)
}

// Clear resets every cell to the blank colour.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(Clear(c.grid.Load(), c.blank))
}

// Apply makes a generated grid current. The grid must match the canvas
// dimensions; it is adopted under the canvas layout.
func (c *Canvas) Apply(g *Grid) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.grid.Load()
	if g.Height() != cur.Height() || g.Width() != cur.Width() {
		return fmt.Errorf("apply %dx%d to %dx%d canvas: %w",
			g.Height(), g.Width(), cur.Height(), cur.Width(), ErrDimensions)
	}
	c.replace(g.WithLayout(cur.Layout()))
	return nil
}

// replace swaps in the new grid and notifies OnChange. Callers hold mu.
func (c *Canvas) replace(g *Grid) {
	c.grid.Store(g)
	if c.OnChange != nil {
		c.OnChange(g)
	}
}
