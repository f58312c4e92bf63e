// Package persistence provides SQLite-based canvas storage.
// Grids are stored as a JSON nested array of colour strings.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

// ErrNotFound is returned when no canvas is stored under an ID.
var ErrNotFound = errors.New("canvas not found")

const metaCurrentCanvas = "current_canvas"

// DB wraps a SQLite connection for canvas persistence.
type DB struct {
	conn *sqlx.DB
}

// Record is one stored canvas row.
type Record struct {
	ID        string `db:"id"`
	Height    int    `db:"height"`
	Width     int    `db:"width"`
	Layout    string `db:"layout"`
	CellsJSON string `db:"cells_json"`
	UpdatedAt int64  `db:"updated_at"`
}

// Updated returns the last save time.
func (r Record) Updated() time.Time {
	return time.Unix(r.UpdatedAt, 0)
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS canvases (
		id TEXT PRIMARY KEY,
		height INTEGER NOT NULL,
		width INTEGER NOT NULL,
		layout TEXT NOT NULL,
		cells_json TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_canvases_updated ON canvases(updated_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveCanvas writes the grid under id, replacing any previous version.
func (db *DB) SaveCanvas(id uuid.UUID, g *canvas.Grid) error {
	cells, err := json.Marshal(g.Strings())
	if err != nil {
		return fmt.Errorf("encode canvas %s: %w", id, err)
	}

	_, err = db.conn.Exec(`INSERT OR REPLACE INTO canvases
		(id, height, width, layout, cells_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), g.Height(), g.Width(), g.Layout().String(), string(cells), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save canvas %s: %w", id, err)
	}
	return nil
}

// LoadRecord returns the stored row for id.
func (db *DB) LoadRecord(id uuid.UUID) (Record, error) {
	var rec Record
	err := db.conn.Get(&rec,
		"SELECT id, height, width, layout, cells_json, updated_at FROM canvases WHERE id = ?",
		id.String(),
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return rec, err
}

// LoadGrid restores the canvas stored under id. The stored cells must form
// a height x width array; anything else is rejected so the caller can keep
// its default grid.
func (db *DB) LoadGrid(id uuid.UUID, height, width int, layout hex.Layout) (*canvas.Grid, error) {
	rec, err := db.LoadRecord(id)
	if err != nil {
		return nil, err
	}
	return rec.Grid(height, width, layout)
}

// Grid decodes the stored cells, validating them against the expected shape.
func (r Record) Grid(height, width int, layout hex.Layout) (*canvas.Grid, error) {
	var rows [][]canvas.Color
	if err := json.Unmarshal([]byte(r.CellsJSON), &rows); err != nil {
		return nil, fmt.Errorf("decode canvas %s: %w", r.ID, err)
	}
	g, err := canvas.FromRows(rows, height, width, layout)
	if err != nil {
		return nil, fmt.Errorf("canvas %s: %w", r.ID, err)
	}
	return g, nil
}

// ListCanvases returns stored canvases, most recently saved first.
func (db *DB) ListCanvases(limit int) ([]Record, error) {
	var recs []Record
	err := db.conn.Select(&recs,
		"SELECT id, height, width, layout, cells_json, updated_at FROM canvases ORDER BY updated_at DESC LIMIT ?",
		limit,
	)
	return recs, err
}

// DeleteCanvas removes a stored canvas.
func (db *DB) DeleteCanvas(id uuid.UUID) error {
	_, err := db.conn.Exec("DELETE FROM canvases WHERE id = ?", id.String())
	return err
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}

// CurrentCanvas returns the ID of the canvas last opened, if any.
func (db *DB) CurrentCanvas() (uuid.UUID, bool) {
	value, err := db.GetMeta(metaCurrentCanvas)
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(value)
	if err != nil {
		slog.Warn("ignoring malformed current canvas id", "value", value, "error", err)
		return uuid.Nil, false
	}
	return id, true
}

// SetCurrentCanvas records id as the canvas to reopen next time.
func (db *DB) SetCurrentCanvas(id uuid.UUID) error {
	return db.SaveMeta(metaCurrentCanvas, id.String())
}

// Recorder returns a canvas change hook that saves every new grid under
// id. Save failures are logged, never propagated to the drawing path.
func (db *DB) Recorder(id uuid.UUID) func(*canvas.Grid) {
	return func(g *canvas.Grid) {
		if err := db.SaveCanvas(id, g); err != nil {
			slog.Error("canvas save failed", "canvas", id, "error", err)
		}
	}
}
