// Package world holds the tile grid shared by the editor and the game.
package world

// Tile ids with fixed meaning. Every other id in [1, catalog size) names a
// tile image; whether it is solid or special is decided by the game.
const (
	TileEmpty      = -1
	TileBackground = 0
)

// Cell addresses a grid cell by row and column.
type Cell struct {
	Row, Col int
}
