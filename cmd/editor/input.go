package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilegrid/editor"
)

// pollSnapshot reads the mouse and keyboard once and merges in the widget
// activations gathered during ui.Update.
func pollSnapshot(c clicks) editor.Snapshot {
	x, y := ebiten.CursorPosition()
	return editor.Snapshot{
		PointerX:    x,
		PointerY:    y,
		PaintHeld:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		EraseHeld:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		LevelUp:     inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		LevelDown:   inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		SaveClicked: c.save,
		LoadClicked: c.load,
		TileClicked: c.tileSet,
		Tile:        c.tile,
	}
}
