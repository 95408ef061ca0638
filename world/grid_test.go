package world

import (
	"math/rand"
	"testing"
)

func TestNewGridRejectsBadShape(t *testing.T) {
	cases := []struct {
		name             string
		rows, cols, tile int
	}{
		{"zero_rows", 0, 20, 8},
		{"negative_cols", 16, -1, 8},
		{"empty_catalog", 16, 20, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewGrid(c.rows, c.cols, c.tile); err == nil {
				t.Fatalf("expected error for %dx%d catalog %d", c.rows, c.cols, c.tile)
			}
		})
	}
}

func TestNewGridIsBackgroundFilled(t *testing.T) {
	g, err := NewGrid(16, 20, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if got := g.Count(TileBackground); got != 16*20 {
		t.Fatalf("expected every cell to be background, got %d", got)
	}
}

func TestGridSetBounds(t *testing.T) {
	g, _ := NewGrid(16, 20, 8)
	cases := []struct {
		name string
		cell Cell
		id   int
		want bool
	}{
		{"in_bounds", Cell{Row: 3, Col: 4}, 5, true},
		{"erase", Cell{Row: 3, Col: 4}, TileEmpty, true},
		{"last_cell", Cell{Row: 15, Col: 19}, 7, true},
		{"row_too_big", Cell{Row: 16, Col: 0}, 1, false},
		{"col_negative", Cell{Row: 0, Col: -1}, 1, false},
		{"id_too_big", Cell{Row: 0, Col: 0}, 8, false},
		{"id_too_small", Cell{Row: 0, Col: 0}, -2, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := g.At(c.cell)
			if got := g.Set(c.cell, c.id); got != c.want {
				t.Fatalf("Set(%+v, %d) = %v, want %v", c.cell, c.id, got, c.want)
			}
			if !c.want && g.At(c.cell) != before {
				t.Fatalf("rejected Set must not change the cell")
			}
			if c.want && g.At(c.cell) != c.id {
				t.Fatalf("expected %d at %+v, got %d", c.id, c.cell, g.At(c.cell))
			}
		})
	}
}

func TestGridInvariantUnderRandomWrites(t *testing.T) {
	g, _ := NewGrid(16, 20, 8)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		c := Cell{Row: rng.Intn(24) - 4, Col: rng.Intn(28) - 4}
		g.Set(c, rng.Intn(12)-2)
	}
	if g.Rows() != 16 || g.Cols() != 20 {
		t.Fatalf("grid shape changed to %dx%d", g.Rows(), g.Cols())
	}
	g.Each(func(c Cell, id int) {
		if !g.ValidID(id) {
			t.Fatalf("cell %+v holds invalid id %d", c, id)
		}
	})
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, _ := NewGrid(4, 4, 8)
	g.Set(Cell{Row: 1, Col: 1}, 3)
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatalf("clone should equal original")
	}
	c.Set(Cell{Row: 1, Col: 1}, 4)
	if g.At(Cell{Row: 1, Col: 1}) != 3 {
		t.Fatalf("writing to the clone changed the original")
	}
	if g.Equal(c) {
		t.Fatalf("grids with different cells should not be equal")
	}
}

func TestGridCellRect(t *testing.T) {
	g, _ := NewGrid(16, 20, 8)
	r := g.CellRect(Cell{Row: 2, Col: 3}, 40)
	if r.X != 120 || r.Y != 80 || r.Width != 40 || r.Height != 40 {
		t.Fatalf("unexpected cell rect %+v", r)
	}
}
