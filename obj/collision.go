package obj

import (
	"github.com/milk9111/tilegrid/common"
	"github.com/milk9111/tilegrid/world"
)

// Collider answers whether a rectangle overlaps any solid tile.
type Collider interface {
	Collides(r common.Rect) bool
}

// Overlaps is the half-open AABB test used for every collision and pickup
// check.
func Overlaps(a, b common.Rect) bool {
	return a.Intersects(b)
}

// IsSolidAt reports whether the tile at c blocks movement: any positive id
// except the pickup tile.
func IsSolidAt(g *world.Grid, c world.Cell, pickupTile int) bool {
	id := g.At(c)
	return id > 0 && id != pickupTile
}

// Collides scans every cell in row-major order and returns true on the first
// solid tile whose rectangle overlaps candidate.
func Collides(candidate common.Rect, g *world.Grid, tileSize, pickupTile int) bool {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := world.Cell{Row: r, Col: c}
			if !IsSolidAt(g, cell, pickupTile) {
				continue
			}
			if Overlaps(candidate, g.CellRect(cell, tileSize)) {
				return true
			}
		}
	}
	return false
}

// GridCollider is the exhaustive Collider. It reads the grid on every call so
// edits made after construction are always seen.
type GridCollider struct {
	Grid       *world.Grid
	TileSize   int
	PickupTile int
}

func (gc GridCollider) Collides(r common.Rect) bool {
	return Collides(r, gc.Grid, gc.TileSize, gc.PickupTile)
}
