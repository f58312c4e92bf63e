package persistence

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/talgya/hexcanvas/internal/canvas"
	"github.com/talgya/hexcanvas/internal/hex"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "canvas.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestSaveLoadCanvas verifies a grid survives a save and load
func TestSaveLoadCanvas(t *testing.T) {
	db := openTestDB(t)
	id := uuid.New()

	g := canvas.New(3, 4, hex.LayoutOffsetRows, canvas.DefaultColor)
	g, _ = canvas.Paint(g, hex.Coord{Row: 2, Col: 3}, "#FF6B6B")

	if err := db.SaveCanvas(id, g); err != nil {
		t.Fatalf("SaveCanvas: %v", err)
	}

	got, err := db.LoadGrid(id, 3, 4, hex.LayoutOffsetRows)
	if err != nil {
		t.Fatalf("LoadGrid: %v", err)
	}
	if !got.Equal(g) {
		t.Errorf("Loaded grid differs:\n%s\nwant:\n%s", got, g)
	}
}

// TestLoadRejectsWrongDimensions verifies stored grids of another shape are refused
func TestLoadRejectsWrongDimensions(t *testing.T) {
	db := openTestDB(t)
	id := uuid.New()

	if err := db.SaveCanvas(id, canvas.New(3, 4, hex.LayoutOffsetRows, canvas.DefaultColor)); err != nil {
		t.Fatalf("SaveCanvas: %v", err)
	}

	if _, err := db.LoadGrid(id, 10, 10, hex.LayoutOffsetRows); !errors.Is(err, canvas.ErrDimensions) {
		t.Errorf("Expected ErrDimensions, got %v", err)
	}
}

// TestRecordGridMalformed covers non-array payloads
func TestRecordGridMalformed(t *testing.T) {
	tests := []struct {
		name  string
		cells string
	}{
		{name: "object", cells: `{"a": 1}`},
		{name: "flat array", cells: `["#FFFFFF", "#FFFFFF"]`},
		{name: "garbage", cells: `not json`},
		{name: "ragged", cells: `[["#FFFFFF"], ["#FFFFFF", "#FFFFFF"]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{ID: "x", CellsJSON: tt.cells}
			if _, err := rec.Grid(2, 2, hex.LayoutOffsetRows); err == nil {
				t.Error("Expected error for malformed cells")
			}
		})
	}
}

// TestLoadMissingCanvas verifies the not-found error
func TestLoadMissingCanvas(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadGrid(uuid.New(), 2, 2, hex.LayoutOffsetRows); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestCurrentCanvas verifies the meta pointer to the open canvas
func TestCurrentCanvas(t *testing.T) {
	db := openTestDB(t)

	if _, ok := db.CurrentCanvas(); ok {
		t.Error("Expected no current canvas in a fresh database")
	}

	id := uuid.New()
	if err := db.SetCurrentCanvas(id); err != nil {
		t.Fatalf("SetCurrentCanvas: %v", err)
	}
	got, ok := db.CurrentCanvas()
	if !ok || got != id {
		t.Errorf("Expected %s, got %s (ok=%v)", id, got, ok)
	}

	if err := db.SaveMeta(metaCurrentCanvas, "not-a-uuid"); err != nil {
		t.Fatalf("SaveMeta: %v", err)
	}
	if _, ok := db.CurrentCanvas(); ok {
		t.Error("Expected malformed id to be ignored")
	}
}

// TestRecorderAndList verifies the change hook persists grids
func TestRecorderAndList(t *testing.T) {
	db := openTestDB(t)
	id := uuid.New()

	c := canvas.NewCanvas(canvas.New(2, 2, hex.LayoutOffsetRows, canvas.DefaultColor), canvas.DefaultPalette(), canvas.DefaultColor)
	c.OnChange = db.Recorder(id)
	c.Click(hex.Coord{Row: 1, Col: 0})

	recs, err := db.ListCanvases(10)
	if err != nil {
		t.Fatalf("ListCanvases: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != id.String() {
		t.Fatalf("Expected one record for %s, got %+v", id, recs)
	}
	if recs[0].Layout != "offset" || recs[0].Height != 2 || recs[0].Width != 2 {
		t.Errorf("Unexpected record %+v", recs[0])
	}

	got, err := recs[0].Grid(2, 2, hex.LayoutOffsetRows)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if !got.Equal(c.Grid()) {
		t.Error("Recorded grid differs from canvas")
	}

	if err := db.DeleteCanvas(id); err != nil {
		t.Fatalf("DeleteCanvas: %v", err)
	}
	if _, err := db.LoadRecord(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
