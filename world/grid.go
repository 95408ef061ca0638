package world

import (
	"fmt"

	"github.com/milk9111/tilegrid/common"
)

// Grid is a fixed-size, row-major table of tile ids. Its dimensions and
// catalog size are fixed at creation and every cell stays within
// [TileEmpty, CatalogSize).
type Grid struct {
	rows, cols int
	catalog    int
	cells      []int
}

// NewGrid returns a rows x cols grid filled with TileBackground.
func NewGrid(rows, cols, catalogSize int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("world: invalid grid dimensions %dx%d", rows, cols)
	}
	if catalogSize <= 0 {
		return nil, fmt.Errorf("world: invalid catalog size %d", catalogSize)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		catalog: catalogSize,
		cells:   make([]int, rows*cols),
	}, nil
}

func (g *Grid) Rows() int        { return g.rows }
func (g *Grid) Cols() int        { return g.cols }
func (g *Grid) CatalogSize() int { return g.catalog }

// InBounds reports whether c addresses a cell of the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// ValidID reports whether id may be stored in a cell.
func (g *Grid) ValidID(id int) bool {
	return id >= TileEmpty && id < g.catalog
}

// At returns the id at c, or TileEmpty when c is out of bounds.
func (g *Grid) At(c Cell) int {
	if !g.InBounds(c) {
		return TileEmpty
	}
	return g.cells[c.Row*g.cols+c.Col]
}

// Set writes id at c. It returns false and leaves the grid unchanged when c is
// out of bounds or id is outside the catalog.
func (g *Grid) Set(c Cell, id int) bool {
	if !g.InBounds(c) || !g.ValidID(id) {
		return false
	}
	g.cells[c.Row*g.cols+c.Col] = id
	return true
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) []int {
	if r < 0 || r >= g.rows {
		return nil
	}
	out := make([]int, g.cols)
	copy(out, g.cells[r*g.cols:(r+1)*g.cols])
	return out
}

// Count returns how many cells hold id.
func (g *Grid) Count(id int) int {
	n := 0
	for _, v := range g.cells {
		if v == id {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c Cell, id int)) {
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			fn(Cell{Row: r, Col: col}, g.cells[r*g.cols+col])
		}
	}
}

// CellRect returns the world-space rectangle covered by c.
func (g *Grid) CellRect(c Cell, tileSize int) common.Rect {
	ts := float32(tileSize)
	return common.Rect{
		X:      float32(c.Col) * ts,
		Y:      float32(c.Row) * ts,
		Width:  ts,
		Height: ts,
	}
}

func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, catalog: g.catalog, cells: cells}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
