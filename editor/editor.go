// Package editor implements the tile editor's state: the grid being painted,
// the active tile, and the level index used for save and load. It has no
// rendering or input code; the editor binary feeds it one Snapshot per tick.
package editor

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/tilegrid/world"
)

// SavedFrames is how many ticks the saved indicator stays visible.
const SavedFrames = 30

// LevelStore persists grids by level index.
type LevelStore interface {
	Load(index int) (*world.Grid, int, error)
	Save(index int, g *world.Grid) error
}

type Editor struct {
	grid     *world.Grid
	store    LevelStore
	tileSize int

	level       int
	selected    int
	savedFrames int
	dirty       bool
}

// New returns an editor painting onto g. The first non-background tile is
// selected initially.
func New(g *world.Grid, store LevelStore, tileSize int) *Editor {
	e := &Editor{grid: g, store: store, tileSize: tileSize}
	if !e.SelectTile(1) {
		e.selected = world.TileBackground
	}
	return e
}

func (e *Editor) Grid() *world.Grid { return e.grid }
func (e *Editor) Level() int        { return e.level }
func (e *Editor) Selected() int     { return e.selected }

// Dirty reports whether the grid changed since the last save or load.
func (e *Editor) Dirty() bool { return e.dirty }

// SavedVisible reports whether the saved indicator should be drawn.
func (e *Editor) SavedVisible() bool { return e.savedFrames > 0 }

// CellAt maps a pointer position to a grid cell. Positions over the side or
// bottom panels are outside the grid and report false.
func (e *Editor) CellAt(px, py int) (world.Cell, bool) {
	if px < 0 || py < 0 {
		return world.Cell{}, false
	}
	if px >= e.grid.Cols()*e.tileSize || py >= e.grid.Rows()*e.tileSize {
		return world.Cell{}, false
	}
	return world.Cell{Row: py / e.tileSize, Col: px / e.tileSize}, true
}

// PaintAt writes id at c and reports whether the cell changed. Out-of-bounds
// cells and ids outside the catalog are ignored.
func (e *Editor) PaintAt(c world.Cell, id int) bool {
	if !e.grid.InBounds(c) || e.grid.At(c) == id {
		return false
	}
	if !e.grid.Set(c, id) {
		return false
	}
	e.dirty = true
	return true
}

// EraseAt clears c.
func (e *Editor) EraseAt(c world.Cell) bool {
	return e.PaintAt(c, world.TileEmpty)
}

// SelectTile makes id the active paint tile. Ids outside the catalog are
// rejected.
func (e *Editor) SelectTile(id int) bool {
	if id < 0 || id >= e.grid.CatalogSize() {
		return false
	}
	e.selected = id
	return true
}

// ChangeLevel moves the level index by delta, never below zero. The grid is
// left as is: the index only names the record that Save and Load use.
func (e *Editor) ChangeLevel(delta int) {
	e.level += delta
	if e.level < 0 {
		e.level = 0
	}
}

// Save writes the grid to the current level index.
func (e *Editor) Save() error {
	if err := e.store.Save(e.level, e.grid); err != nil {
		return fmt.Errorf("editor: save level %d: %w", e.level, err)
	}
	e.savedFrames = SavedFrames
	e.dirty = false
	log.Info("saved level", "level", e.level)
	return nil
}

// Load replaces the grid with the record for the current level index. On
// failure the grid is left untouched.
func (e *Editor) Load() error {
	g, pickups, err := e.store.Load(e.level)
	if err != nil {
		return fmt.Errorf("editor: load level %d: %w", e.level, err)
	}
	e.grid = g
	e.dirty = false
	log.Info("loaded level", "level", e.level, "pickups", pickups)
	return nil
}

// Update applies one tick of input. Save and load errors are returned after
// the rest of the tick has been applied.
func (e *Editor) Update(in Snapshot) error {
	var err error
	if in.SaveClicked {
		err = e.Save()
	}
	if in.LoadClicked {
		if lerr := e.Load(); lerr != nil && err == nil {
			err = lerr
		}
	}
	if e.savedFrames > 0 {
		e.savedFrames--
	}

	if in.TileClicked {
		e.SelectTile(in.Tile)
	}

	if cell, ok := e.CellAt(in.PointerX, in.PointerY); ok {
		if in.PaintHeld {
			e.PaintAt(cell, e.selected)
		}
		if in.EraseHeld {
			e.EraseAt(cell)
		}
	}

	if in.LevelUp {
		e.ChangeLevel(1)
	}
	if in.LevelDown {
		e.ChangeLevel(-1)
	}
	return err
}
