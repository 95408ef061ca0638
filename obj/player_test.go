package obj

import (
	"testing"

	"github.com/milk9111/tilegrid/common"
	"github.com/milk9111/tilegrid/world"
)

const (
	testTile      = 40
	testPickup    = 2
	testIncrement = 1
	testSize      = testTile - 4
	testSpeed     = 3
)

var testRules = Rules{TileSize: testTile, PickupTile: testPickup, HealthIncrement: testIncrement}

// emptyGrid returns a 16x20 grid with every cell erased.
func emptyGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(16, 20, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Each(func(c world.Cell, _ int) { g.Set(c, world.TileEmpty) })
	return g
}

func forEachCollider(t *testing.T, g *world.Grid, fn func(t *testing.T, lvl *Level)) {
	t.Helper()
	for _, broad := range []bool{false, true} {
		name := "exhaustive"
		if broad {
			name = "broad_phase"
		}
		t.Run(name, func(t *testing.T) {
			fn(t, NewLevel(g.Clone(), testRules, broad))
		})
	}
}

func TestPickupWinsInOneTick(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 2, Col: 2}, testPickup)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		state := NewGameState(lvl.Grid.Count(testPickup))
		x, y := lvl.SpawnPosition(world.Cell{Row: 2, Col: 2})
		p := NewPlayer(x, y, testSize, testSpeed)

		p.Update(Controls{}, lvl, state)

		if state.Health != testIncrement {
			t.Fatalf("health = %d, want %d", state.Health, testIncrement)
		}
		if state.Collected != 1 || state.Total != 1 {
			t.Fatalf("collected/total = %d/%d, want 1/1", state.Collected, state.Total)
		}
		if state.Outcome != Won {
			t.Fatalf("outcome = %v, want Won", state.Outcome)
		}
		if lvl.Grid.At(world.Cell{Row: 2, Col: 2}) != world.TileEmpty {
			t.Fatalf("collected pickup should be erased from the grid")
		}
	})
}

func TestBlockedBySolidTile(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 5, Col: 5}, 3)
	tile := g.CellRect(world.Cell{Row: 5, Col: 5}, testTile)

	cases := []struct {
		name     string
		x, y     float32
		controls Controls
	}{
		{"from_left", tile.X - testSize, tile.Y, Controls{Right: true}},
		{"from_right", tile.Right(), tile.Y, Controls{Left: true}},
		{"from_above", tile.X, tile.Y - testSize, Controls{Down: true}},
		{"from_below", tile.X, tile.Bottom(), Controls{Up: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			forEachCollider(t, g, func(t *testing.T, lvl *Level) {
				state := NewGameState(1)
				p := NewPlayer(c.x, c.y, testSize, testSpeed)
				p.applyInput(c.controls)
				candidate := p.Rect.Translate(p.VelocityX, p.VelocityY)
				if !lvl.Collides(candidate) {
					t.Fatalf("candidate %+v should collide with the tile", candidate)
				}

				p.Update(c.controls, lvl, state)
				if p.X != c.x || p.Y != c.y {
					t.Fatalf("player moved to (%v,%v), want (%v,%v)", p.X, p.Y, c.x, c.y)
				}
			})
		})
	}
}

func TestCollidesExactAndOutside(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 3, Col: 7}, 5)
	g.Set(world.Cell{Row: 3, Col: 8}, testPickup)
	tile := g.CellRect(world.Cell{Row: 3, Col: 7}, testTile)
	pickup := g.CellRect(world.Cell{Row: 3, Col: 8}, testTile)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		if !lvl.Collides(tile) {
			t.Fatalf("a rect equal to the solid tile must collide")
		}
		if lvl.Collides(common.Rect{X: 0, Y: 0, Width: 100, Height: 100}) {
			t.Fatalf("a rect away from all solid tiles must not collide")
		}
		if lvl.Collides(tile.Translate(-testTile, 0)) {
			t.Fatalf("a rect that only shares an edge must not collide")
		}
		if lvl.Collides(pickup) {
			t.Fatalf("pickup tiles are not solid")
		}
	})
}

func TestIsSolidAt(t *testing.T) {
	g := emptyGrid(t)
	cases := []struct {
		id   int
		want bool
	}{
		{world.TileEmpty, false},
		{world.TileBackground, false},
		{1, true},
		{testPickup, false},
		{7, true},
	}
	cell := world.Cell{Row: 1, Col: 1}
	for _, c := range cases {
		g.Set(cell, c.id)
		if got := IsSolidAt(g, cell, testPickup); got != c.want {
			t.Fatalf("IsSolidAt(id=%d) = %v, want %v", c.id, got, c.want)
		}
	}
	if IsSolidAt(g, world.Cell{Row: -1, Col: 0}, testPickup) {
		t.Fatalf("out-of-bounds cells are never solid")
	}
}

func TestPickupIsCollectedOnce(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 2, Col: 2}, testPickup)
	g.Set(world.Cell{Row: 12, Col: 15}, testPickup)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		state := NewGameState(lvl.Grid.Count(testPickup))
		x, y := lvl.SpawnPosition(world.Cell{Row: 2, Col: 2})
		p := NewPlayer(x, y, testSize, testSpeed)

		for i := 0; i < 5; i++ {
			p.Update(Controls{}, lvl, state)
			if state.Collected != 1 || state.Health != testIncrement {
				t.Fatalf("tick %d: collected=%d health=%d, want 1 and %d", i, state.Collected, state.Health, testIncrement)
			}
			if state.Outcome != Playing {
				t.Fatalf("tick %d: one pickup remains, outcome should be Playing", i)
			}
		}
	})
}

func TestSeveralPickupsInOneTick(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 2, Col: 2}, testPickup)
	g.Set(world.Cell{Row: 2, Col: 3}, testPickup)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		state := NewGameState(2)
		// straddles both pickup cells
		p := NewPlayer(100, 80, testSize, testSpeed)
		p.Update(Controls{}, lvl, state)
		if state.Collected != 2 || state.Health != 2*testIncrement {
			t.Fatalf("collected=%d health=%d, want 2 and %d", state.Collected, state.Health, 2*testIncrement)
		}
		if !state.Won() {
			t.Fatalf("collecting every pickup should win")
		}
	})
}

func TestWonIsFinal(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 2, Col: 2}, testPickup)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		state := NewGameState(1)
		x, y := lvl.SpawnPosition(world.Cell{Row: 2, Col: 2})
		p := NewPlayer(x, y, testSize, testSpeed)
		p.Update(Controls{}, lvl, state)
		if !state.Won() {
			t.Fatalf("expected Won after collecting the only pickup")
		}

		// Dropping a new pickup under the player must not count: updates are
		// suspended once won.
		lvl.Grid.Set(world.Cell{Row: 2, Col: 2}, testPickup)
		for i := 0; i < 10; i++ {
			p.Update(Controls{Right: true, Down: true}, lvl, state)
			if state.Outcome != Won || state.Collected != 1 {
				t.Fatalf("tick %d: outcome=%v collected=%d after winning", i, state.Outcome, state.Collected)
			}
		}
		if p.X != x || p.Y != y {
			t.Fatalf("player moved after winning")
		}
	})
}

func TestNoPickupsWinsOnFirstTick(t *testing.T) {
	lvl := NewLevel(emptyGrid(t), testRules, false)
	state := NewGameState(0)
	p := NewPlayer(80, 80, testSize, testSpeed)
	p.Update(Controls{Right: true}, lvl, state)
	if !state.Won() {
		t.Fatalf("a level without pickups is won immediately")
	}
	if p.X != 83 {
		t.Fatalf("the first tick still moves the player, got x=%v", p.X)
	}
}

func TestMovement(t *testing.T) {
	cases := []struct {
		name         string
		x, y         float32
		controls     Controls
		wantX, wantY float32
	}{
		{"idle", 100, 100, Controls{}, 100, 100},
		{"right", 100, 100, Controls{Right: true}, 103, 100},
		{"up", 100, 100, Controls{Up: true}, 100, 97},
		{"diagonal_not_normalized", 100, 100, Controls{Right: true, Down: true}, 103, 103},
		{"right_overrides_left", 100, 100, Controls{Left: true, Right: true}, 103, 100},
		{"down_overrides_up", 100, 100, Controls{Up: true, Down: true}, 100, 103},
		{"clamp_left", 1, 100, Controls{Left: true}, 0, 100},
		{"clamp_top", 100, 2, Controls{Up: true}, 100, 0},
		{"clamp_right", 800 - testSize - 1, 100, Controls{Right: true}, 800 - testSize, 100},
		{"clamp_bottom", 100, 640 - testSize, Controls{Down: true}, 100, 640 - testSize},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			forEachCollider(t, emptyGrid(t), func(t *testing.T, lvl *Level) {
				p := NewPlayer(c.x, c.y, testSize, testSpeed)
				p.Update(c.controls, lvl, NewGameState(1))
				if p.X != c.wantX || p.Y != c.wantY {
					t.Fatalf("player at (%v,%v), want (%v,%v)", p.X, p.Y, c.wantX, c.wantY)
				}
			})
		})
	}
}

func TestSlidesAlongWall(t *testing.T) {
	g := emptyGrid(t)
	for r := 0; r < 16; r++ {
		g.Set(world.Cell{Row: r, Col: 5}, 1)
	}
	wall := g.CellRect(world.Cell{Row: 0, Col: 5}, testTile)

	forEachCollider(t, g, func(t *testing.T, lvl *Level) {
		p := NewPlayer(wall.X-testSize, 100, testSize, testSpeed)
		p.Update(Controls{Right: true, Down: true}, lvl, NewGameState(1))
		if p.X != wall.X-testSize {
			t.Fatalf("x should be blocked by the wall, got %v", p.X)
		}
		if p.Y != 103 {
			t.Fatalf("y should still advance, got %v", p.Y)
		}
	})
}

func TestGameStateCheckWin(t *testing.T) {
	s := NewGameState(2)
	if s.CheckWin() != Playing {
		t.Fatalf("no pickups collected yet")
	}
	s.Collect(5)
	s.Collect(5)
	if s.CheckWin() != Won || s.Health != 10 {
		t.Fatalf("expected Won with health 10, got %v/%d", s.Outcome, s.Health)
	}
	if Won.String() != "Won" || Playing.String() != "Playing" {
		t.Fatalf("unexpected outcome names")
	}
}

func TestRewardOverridesIncrement(t *testing.T) {
	g := emptyGrid(t)
	g.Set(world.Cell{Row: 2, Col: 2}, testPickup)
	g.Set(world.Cell{Row: 2, Col: 3}, testPickup)

	rules := testRules
	var seen []int
	rules.Reward = func(s GameState, increment int) int {
		seen = append(seen, s.Collected)
		return increment * 10 * (s.Collected + 1)
	}
	lvl := NewLevel(g, rules, false)
	state := NewGameState(2)
	p := NewPlayer(100, 80, testSize, testSpeed)
	p.Update(Controls{}, lvl, state)

	if state.Health != 30 {
		t.Fatalf("health = %d, want 30", state.Health)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("reward saw collected counts %v, want [0 1]", seen)
	}
}
