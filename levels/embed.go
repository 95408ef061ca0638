package levels

import (
	"embed"
	"io/fs"
)

//go:embed *.csv
var LevelsFS embed.FS

// Bundled returns a read-only store over the levels compiled into the binary.
func Bundled(shape Shape) *Store {
	return NewReadOnlyStore(fs.FS(LevelsFS), shape)
}
