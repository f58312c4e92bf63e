package canvas

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ReservedNeutrals is the number of trailing palette entries kept for
// neutrals: white, light gray, dark gray and black, in that order.
const ReservedNeutrals = 4

// DefaultColor is the colour of a fresh or cleared cell.
const DefaultColor Color = "#EEEEEE"

// ErrEmptyPalette is returned when a palette has no usable entries.
var ErrEmptyPalette = errors.New("palette has no colours")

// DefaultColors is the stock palette.
var DefaultColors = []Color{
	"#FF6B6B", // Red
	"#FFD93D", // Yellow
	"#6BCB77", // Green
	"#4D96FF", // Blue
	"#9B5DE5", // Purple
	"#F15BB5", // Pink
	"#00BBF9", // Cyan
	"#FF9E00", // Orange
	"#8AC926", // Lime
	"#FFFFFF", // White
	"#AAAAAA", // Light Gray
	"#555555", // Dark Gray
	"#000000", // Black
}

// Palette is an ordered list of selectable colours ending in the reserved
// neutrals.
type Palette []Color

// NewPalette validates every entry as a "#RRGGBB" colour.
func NewPalette(colors []Color) (Palette, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	for i, c := range colors {
		if _, err := colorful.Hex(string(c)); err != nil {
			return nil, fmt.Errorf("palette entry %d %q: %w", i, c, err)
		}
	}
	return append(Palette(nil), colors...), nil
}

// DefaultPalette returns a copy of the stock palette.
func DefaultPalette() Palette {
	return append(Palette(nil), DefaultColors...)
}

// HasNeutrals reports whether the palette is long enough to carry the
// reserved neutrals plus at least one fill colour.
func (p Palette) HasNeutrals() bool {
	return len(p) > ReservedNeutrals
}

// Fill returns the entries usable for generated shapes, excluding the
// reserved neutrals.
func (p Palette) Fill() []Color {
	if !p.HasNeutrals() {
		return nil
	}
	return p[:len(p)-ReservedNeutrals]
}

// Background returns the light gray neutral.
func (p Palette) Background() Color {
	if !p.HasNeutrals() {
		return DefaultColor
	}
	return p[len(p)-ReservedNeutrals+1]
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Contrast returns black or white, whichever reads better on c.
// Unparseable colours get black.
func Contrast(c Color) Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return "#000000"
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#FFFFFF"
}
