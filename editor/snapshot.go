package editor

// Snapshot is the editor input for one tick. It is filled once, before
// Update runs, so nothing re-reads the input devices mid-update.
type Snapshot struct {
	// PointerX, PointerY are the cursor position in window pixels.
	PointerX, PointerY int
	// PaintHeld and EraseHeld are the left and right mouse buttons.
	PaintHeld bool
	EraseHeld bool
	// LevelUp and LevelDown are true on the tick the key went down.
	LevelUp   bool
	LevelDown bool
	// SaveClicked and LoadClicked are true on the tick the button activated.
	SaveClicked bool
	LoadClicked bool
	// TileClicked is true when palette entry Tile activated this tick.
	TileClicked bool
	Tile        int
}
