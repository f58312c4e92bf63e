// Command hexcanvas is a terminal hex-grid colouring canvas.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/config"
	"github.com/talgya/hexcanvas/internal/entropy"
	"github.com/talgya/hexcanvas/internal/pattern"
	"github.com/talgya/hexcanvas/internal/persistence"
	"github.com/talgya/hexcanvas/internal/view"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	printOnly := flag.Bool("print", false, "print the current canvas and exit")
	patternName := flag.String("pattern", "", "generate a pattern (voronoi, shapes, noise), save it and exit")
	list := flag.Bool("list", false, "list saved canvases and exit")
	fresh := flag.Bool("new", false, "start a new canvas instead of reopening the last one")
	flag.Parse()

	interactive := !*printOnly && *patternName == "" && !*list &&
		isatty.IsTerminal(os.Stdout.Fd())

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// ── Logging ──────────────────────────────────────────────────────
	// The terminal UI owns the screen, so interactive sessions log to a file.
	var logOut io.Writer = os.Stderr
	dirErr := prepareDir(cfg.Store.Path)
	if interactive && dirErr == nil {
		logPath := filepath.Join(filepath.Dir(cfg.Store.Path), "hexcanvas.log")
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			defer f.Close()
			logOut = f
		}
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// ── Database ──────────────────────────────────────────────────────
	if dirErr != nil {
		slog.Error("failed to create data directory", "error", dirErr)
		os.Exit(1)
	}
	db, err := persistence.Open(cfg.Store.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.Store.Path)

	if *list {
		if err := listCanvases(db); err != nil {
			slog.Error("list failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// ── Canvas ────────────────────────────────────────────────────────
	palette, err := canvas.NewPalette(cfg.Colors())
	if err != nil {
		slog.Error("invalid palette", "error", err)
		os.Exit(1)
	}
	blank := canvas.Color(cfg.Grid.DefaultColor)
	id, grid := restore(db, cfg, blank, *fresh)

	if err := db.SetCurrentCanvas(id); err != nil {
		slog.Error("failed to record current canvas", "error", err)
	}

	c := canvas.NewCanvas(grid, palette, blank)
	c.OnChange = db.Recorder(id)

	gen := &generator{
		canvas:  c,
		source:  entropy.NewSource(cfg.Pattern.Seed),
		palette: palette,
		dims: pattern.Dims{
			Height: cfg.Grid.Height,
			Width:  cfg.Grid.Width,
			Layout: cfg.Layout(),
		},
		counts: map[pattern.Kind]int{
			pattern.KindVoronoi: cfg.Pattern.Regions,
			pattern.KindShapes:  cfg.Pattern.Shapes,
			pattern.KindNoise:   cfg.Pattern.Bands,
		},
	}

	if *patternName != "" {
		kind, err := pattern.ParseKind(*patternName)
		if err == nil {
			err = gen.Generate(kind)
		}
		if err != nil {
			slog.Error("pattern generation failed", "error", err)
			os.Exit(1)
		}
		fmt.Print(c.Grid())
		return
	}

	if !interactive {
		fmt.Print(c.Grid())
		return
	}

	// ── Terminal UI ───────────────────────────────────────────────────
	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to initialise screen", "error", err)
		os.Exit(1)
	}

	app := view.New(screen, c, cfg.View.HexSize, cfg.View.Margin)
	app.Generate = gen.Generate
	app.Run()
	screen.Fini()

	fmt.Printf("Canvas %s saved to %s\n", id, cfg.Store.Path)
}

// prepareDir creates the directory that holds the database file.
func prepareDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

// restore reopens the last canvas, falling back to a blank grid when none
// is stored or the stored one does not fit the configured dimensions.
func restore(db *persistence.DB, cfg config.Config, blank canvas.Color, fresh bool) (uuid.UUID, *canvas.Grid) {
	height, width, layout := cfg.Grid.Height, cfg.Grid.Width, cfg.Layout()
	blankGrid := canvas.New(height, width, layout, blank)

	id, ok := db.CurrentCanvas()
	if fresh || !ok {
		id = uuid.New()
		slog.Info("starting new canvas", "canvas", id, "height", height, "width", width, "layout", layout)
		return id, blankGrid
	}

	rec, err := db.LoadRecord(id)
	if errors.Is(err, persistence.ErrNotFound) {
		slog.Info("starting new canvas", "canvas", id, "height", height, "width", width, "layout", layout)
		return id, blankGrid
	}
	if err != nil {
		slog.Warn("could not read saved canvas, using blank grid", "canvas", id, "error", err)
		return id, blankGrid
	}

	g, err := rec.Grid(height, width, layout)
	if err != nil {
		slog.Warn("discarding saved canvas", "canvas", id, "error", err)
		return id, blankGrid
	}

	slog.Info("canvas restored",
		"canvas", id,
		"cells", humanize.Comma(int64(height*width)),
		"saved", humanize.Time(rec.Updated()),
	)
	return id, g
}

func listCanvases(db *persistence.DB) error {
	recs, err := db.ListCanvases(20)
	if err != nil {
		return err
	}
	current, _ := db.CurrentCanvas()
	for _, r := range recs {
		marker := " "
		if r.ID == current.String() {
			marker = "*"
		}
		fmt.Printf("%s %s  %dx%d %-7s saved %s\n",
			marker, r.ID, r.Height, r.Width, r.Layout, humanize.Time(r.Updated()))
	}
	return nil
}
