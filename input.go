package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tilegrid/obj"
)

// readControls polls the arrow keys once for this tick.
func readControls() obj.Controls {
	return obj.Controls{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}
