package obj

import (
	"github.com/milk9111/tilegrid/common"
	"github.com/milk9111/tilegrid/world"
)

// Player is the avatar walked over the level. Its embedded Rect is the
// collision box in world pixels.
type Player struct {
	common.Rect
	VelocityX float32
	VelocityY float32
	Speed     float32
}

// NewPlayer places a size x size player with its top-left corner at (x, y).
func NewPlayer(x, y, size, speed float32) *Player {
	return &Player{
		Rect:  common.Rect{X: x, Y: y, Width: size, Height: size},
		Speed: speed,
	}
}

// Update advances the player by one tick: velocity from input, clamped and
// axis-separated movement, pickup collection and the win check. Once the
// session is won the player no longer moves.
func (p *Player) Update(in Controls, lvl *Level, state *GameState) {
	if state.Won() {
		return
	}

	p.applyInput(in)
	p.move(lvl)
	p.collectPickups(lvl, state)
	state.CheckWin()
}

// applyInput sets velocity per axis. Diagonals are not normalized, and the
// later key wins when opposite directions are held.
func (p *Player) applyInput(in Controls) {
	p.VelocityX, p.VelocityY = 0, 0
	if in.Left {
		p.VelocityX = -p.Speed
	}
	if in.Right {
		p.VelocityX = p.Speed
	}
	if in.Up {
		p.VelocityY = -p.Speed
	}
	if in.Down {
		p.VelocityY = p.Speed
	}
}

// move commits X before Y, each only when the box at the new position is
// clear. Sliding along walls is therefore asymmetric between the axes.
func (p *Player) move(lvl *Level) {
	bounds := lvl.Bounds()
	newX := common.Clamp(p.X+p.VelocityX, bounds.X, bounds.Right()-p.Width)
	newY := common.Clamp(p.Y+p.VelocityY, bounds.Y, bounds.Bottom()-p.Height)

	candidate := p.Rect
	candidate.X = newX
	if !lvl.Collides(candidate) {
		p.X = newX
	}

	candidate = p.Rect
	candidate.Y = newY
	if !lvl.Collides(candidate) {
		p.Y = newY
	}
}

// collectPickups removes every pickup tile the player overlaps this tick.
func (p *Player) collectPickups(lvl *Level, state *GameState) {
	rules := lvl.Rules
	lvl.Grid.Each(func(c world.Cell, id int) {
		if id != rules.PickupTile {
			return
		}
		if !Overlaps(p.Rect, lvl.Grid.CellRect(c, rules.TileSize)) {
			return
		}
		lvl.Grid.Set(c, world.TileEmpty)
		state.Collect(rules.pickupReward(state))
	})
}
