// Package config loads canvas settings from defaults, an optional TOML
// file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// Environment overrides.
const (
	EnvDBPath = "HEXCANVAS_DB"
	EnvSeed   = "HEXCANVAS_SEED"
)

// Config holds every tunable of the application.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Palette []string      `toml:"palette"`
	View    ViewConfig    `toml:"view"`
	Store   StoreConfig   `toml:"store"`
	Pattern PatternConfig `toml:"pattern"`
}

// GridConfig fixes the canvas shape for the session.
type GridConfig struct {
	Height       int    `toml:"height"`
	Width        int    `toml:"width"`
	Layout       string `toml:"layout"` // offset, tworow or cube
	DefaultColor string `toml:"default_color"`
}

// ViewConfig controls the terminal front end.
type ViewConfig struct {
	HexSize float64 `toml:"hex_size"`
	Margin  int     `toml:"margin"`
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string `toml:"path"`
}

// PatternConfig holds generator defaults.
type PatternConfig struct {
	Seed    int64 `toml:"seed"` // 0 = random
	Regions int   `toml:"regions"`
	Shapes  int   `toml:"shapes"`
	Bands   int   `toml:"bands"`
}

// Default returns a 10x10 offset-row canvas with the stock palette.
func Default() Config {
	palette := make([]string, len(canvas.DefaultColors))
	for i, c := range canvas.DefaultColors {
		palette[i] = string(c)
	}
	return Config{
		Grid: GridConfig{
			Height:       10,
			Width:        10,
			Layout:       "offset",
			DefaultColor: string(canvas.DefaultColor),
		},
		Palette: palette,
		View: ViewConfig{
			HexSize: 1,
			Margin:  1,
		},
		Store: StoreConfig{
			Path: "data/hexcanvas.db",
		},
		Pattern: PatternConfig{
			Regions: 5,
			Shapes:  6,
			Bands:   5,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("config %s: unknown keys %v", path, undecoded)
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Pattern.Seed = seed
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration for values the canvas cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Grid.Height <= 0 || c.Grid.Width <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Height, c.Grid.Width))
	}
	if _, err := hex.ParseLayout(c.Grid.Layout); err != nil {
		errs = append(errs, err)
	}
	if _, err := canvas.NewPalette(c.Colors()); err != nil {
		errs = append(errs, err)
	}
	if _, err := canvas.NewPalette([]canvas.Color{canvas.Color(c.Grid.DefaultColor)}); err != nil {
		errs = append(errs, fmt.Errorf("default colour: %w", err))
	}
	if c.View.HexSize <= 0 {
		errs = append(errs, fmt.Errorf("hex size must be positive, got %v", c.View.HexSize))
	}
	if c.Store.Path == "" {
		errs = append(errs, errors.New("store path is empty"))
	}
	return errors.Join(errs...)
}

// Colors returns the palette as canvas colours.
func (c Config) Colors() []canvas.Color {
	out := make([]canvas.Color, len(c.Palette))
	for i, s := range c.Palette {
		out[i] = canvas.Color(s)
	}
	return out
}

// Layout returns the parsed grid layout. Call after Validate.
func (c Config) Layout() hex.Layout {
	l, _ := hex.ParseLayout(c.Grid.Layout)
	return l
}
