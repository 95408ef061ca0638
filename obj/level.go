package obj

import (
	"github.com/milk9111/tilegrid/common"
	"github.com/milk9111/tilegrid/world"
)

// Rules are the per-session tuning values the player update reads.
type Rules struct {
	TileSize        int
	PickupTile      int
	HealthIncrement int
	// Reward, when set, replaces HealthIncrement. It is called with the
	// state as it was before the pickup is counted.
	Reward func(state GameState, increment int) int
}

// pickupReward is the health granted for the next pickup.
func (r Rules) pickupReward(state *GameState) int {
	if r.Reward == nil {
		return r.HealthIncrement
	}
	return r.Reward(*state, r.HealthIncrement)
}

// Level is the grid a player walks over together with the collider used to
// resolve movement against it.
type Level struct {
	Grid  *world.Grid
	Rules Rules

	collider Collider
}

// NewLevel wraps g. With broadPhase set, solid tiles are indexed once up
// front; otherwise every collision query scans the whole grid.
func NewLevel(g *world.Grid, rules Rules, broadPhase bool) *Level {
	l := &Level{Grid: g, Rules: rules}
	if broadPhase {
		l.collider = NewSolidIndex(g, rules.TileSize, rules.PickupTile)
	} else {
		l.collider = GridCollider{Grid: g, TileSize: rules.TileSize, PickupTile: rules.PickupTile}
	}
	return l
}

// Bounds is the play area in world pixels.
func (l *Level) Bounds() common.Rect {
	ts := float32(l.Rules.TileSize)
	return common.Rect{
		Width:  float32(l.Grid.Cols()) * ts,
		Height: float32(l.Grid.Rows()) * ts,
	}
}

// Index returns the broad-phase index, or nil when collisions scan the grid.
func (l *Level) Index() *SolidIndex {
	si, _ := l.collider.(*SolidIndex)
	return si
}

func (l *Level) Collides(r common.Rect) bool {
	return l.collider.Collides(r)
}

// SpawnPosition returns the top-left pixel of the given cell, falling back to
// the origin when the cell is outside the grid.
func (l *Level) SpawnPosition(c world.Cell) (float32, float32) {
	if !l.Grid.InBounds(c) {
		return 0, 0
	}
	r := l.Grid.CellRect(c, l.Rules.TileSize)
	return r.X, r.Y
}
