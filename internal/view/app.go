package view

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
	"github.com/talgya/hexcanvas/internal/pattern"
)

// App draws a canvas on a tcell screen and routes input to it.
type App struct {
	screen tcell.Screen
	canvas *canvas.Canvas
	tf     Transform
	margin int

	drawW, drawH int

	cursor   hex.Coord
	dragging bool
	status   string

	// Generate replaces the canvas with a generated pattern. Nil disables
	// the generator keys.
	Generate func(kind pattern.Kind) error
}

// New creates an App for an initialised screen.
func New(screen tcell.Screen, c *canvas.Canvas, hexSize float64, margin int) *App {
	g := c.Grid()
	tf, w, h := Fit(g.Height(), g.Width(), g.Layout(), hexSize, margin)
	return &App{
		screen: screen,
		canvas: c,
		tf:     tf,
		margin: margin,
		drawW:  w,
		drawH:  h,
	}
}

// Transform returns the screen mapping in use.
func (a *App) Transform() Transform {
	return a.tf
}

// Cursor returns the keyboard cursor position.
func (a *App) Cursor() hex.Coord {
	return a.cursor
}

// Run draws and handles events until the user quits.
func (a *App) Run() {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	for {
		a.Draw()
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	g := a.canvas.Grid()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0, g)
	case tcell.KeyDown:
		a.moveCursor(1, 0, g)
	case tcell.KeyLeft:
		a.moveCursor(0, -1, g)
	case tcell.KeyRight:
		a.moveCursor(0, 1, g)
	case tcell.KeyTab:
		a.cycleColor(1)
	case tcell.KeyBacktab:
		a.cycleColor(-1)
	case tcell.KeyEnter:
		a.canvas.Click(a.cursor)
	case tcell.KeyRune:
		return a.handleRune(r)
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		a.canvas.Click(a.cursor)
	case 'f':
		a.canvas.SetMode(canvas.ModeFill)
		a.status = "select a cell to flood fill"
	case 'p':
		a.canvas.SetMode(canvas.ModePaint)
		a.status = ""
	case 'c':
		a.canvas.Clear()
		a.status = "cleared"
	case 'v':
		a.generate(pattern.KindVoronoi)
	case 's':
		a.generate(pattern.KindShapes)
	case 'n':
		a.generate(pattern.KindNoise)
	default:
		if r >= '1' && r <= '9' {
			if i := int(r - '1'); i < len(a.canvas.Palette()) {
				a.canvas.Select(a.canvas.Palette()[i])
			}
		}
	}
	return true
}

func (a *App) generate(kind pattern.Kind) {
	if a.Generate == nil {
		return
	}
	if err := a.Generate(kind); err != nil {
		slog.Error("pattern generation failed", "pattern", kind, "error", err)
		a.status = fmt.Sprintf("%s failed: %v", kind, err)
		return
	}
	a.status = string(kind)
}

func (a *App) moveCursor(dRow, dCol int, g *canvas.Grid) {
	next := hex.Coord{Row: a.cursor.Row + dRow, Col: a.cursor.Col + dCol}
	if g.InBounds(next) {
		a.cursor = next
	}
}

func (a *App) cycleColor(step int) {
	p := a.canvas.Palette()
	if len(p) == 0 {
		return
	}
	i := p.Index(a.canvas.Selected())
	i = ((i+step)%len(p) + len(p)) % len(p)
	a.canvas.Select(p[i])
}

// handleMouse turns pointer state into clicks and drags. A press starts a
// click, motion with the button held drags, release ends the stroke.
func (a *App) handleMouse(x, y int, buttons tcell.ButtonMask) {
	if i, ok := a.swatchAt(x, y); ok {
		if buttons&tcell.Button1 != 0 && !a.dragging {
			a.canvas.Select(a.canvas.Palette()[i])
		}
		a.dragging = buttons&tcell.Button1 != 0
		return
	}

	at := a.tf.CellAt(x, y)
	g := a.canvas.Grid()
	if g.InBounds(at) {
		a.cursor = at
	}

	if buttons&tcell.Button1 == 0 {
		a.dragging = false
		return
	}
	if a.dragging {
		a.canvas.Drag(at)
		return
	}
	a.dragging = true
	a.canvas.Click(at)
}

// paletteRow is the screen row of the colour swatches.
func (a *App) paletteRow() int {
	return a.margin + a.drawH + 1
}

// swatchAt returns the palette index drawn at (x, y).
func (a *App) swatchAt(x, y int) (int, bool) {
	if y != a.paletteRow() || x < a.margin {
		return 0, false
	}
	i := (x - a.margin) / 3
	if (x-a.margin)%3 == 2 || i >= len(a.canvas.Palette()) {
		return 0, false
	}
	return i, true
}

// Draw renders the grid, palette and status line.
func (a *App) Draw() {
	a.screen.Clear()
	g := a.canvas.Grid()

	preview := make(map[hex.Coord]bool)
	if a.canvas.Mode() == canvas.ModeFill {
		for _, c := range canvas.Region(g, a.cursor) {
			preview[c] = true
		}
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			at := hex.Coord{Row: row, Col: col}
			color := g.At(at)
			style := tcell.StyleDefault.
				Background(tcell.GetColor(string(color))).
				Foreground(tcell.GetColor(string(canvas.Contrast(color))))

			left, right := ' ', ' '
			switch {
			case at == a.cursor:
				left, right = '[', ']'
			case preview[at]:
				left, right = '·', '·'
			}
			x, y := a.tf.CellOrigin(at)
			a.screen.SetContent(x, y, left, nil, style)
			a.screen.SetContent(x+1, y, right, nil, style)
		}
	}

	a.drawPalette()
	a.drawStatus()
	a.screen.Show()
}

func (a *App) drawPalette() {
	y := a.paletteRow()
	selected := a.canvas.Selected()
	for i, color := range a.canvas.Palette() {
		style := tcell.StyleDefault.
			Background(tcell.GetColor(string(color))).
			Foreground(tcell.GetColor(string(canvas.Contrast(color))))
		glyph := ' '
		if color == selected {
			glyph = '*'
		}
		x := a.margin + i*3
		a.screen.SetContent(x, y, glyph, nil, style)
		a.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

func (a *App) drawStatus() {
	line := fmt.Sprintf("mode: %s  colour: %s  (%d,%d)  %s",
		a.canvas.Mode(), a.canvas.Selected(), a.cursor.Row, a.cursor.Col, a.status)
	help := "click/space paint  f fill  c clear  v/s/n generate  tab/1-9 colour  q quit"
	a.drawText(a.margin, a.paletteRow()+2, line)
	a.drawText(a.margin, a.paletteRow()+3, help)
}

func (a *App) drawText(x, y int, s string) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
