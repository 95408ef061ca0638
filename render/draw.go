package render

import (
	"bytes"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/tilegrid/world"
)

var (
	faceSource     *text.GoTextFaceSource
	faceSourceOnce sync.Once
)

// Face returns the Go Regular face at size points.
func Face(size float64) text.Face {
	faceSourceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic("render: load font: " + err.Error())
		}
		faceSource = s
	})
	return &text.GoTextFace{Source: faceSource, Size: size}
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// DrawTextCentered draws s centred on (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	w, h := text.Measure(s, face, 0)
	DrawText(dst, s, face, cx-w/2, cy-h/2, clr)
}

// DrawBackground draws tile 0 beneath every cell of g.
func DrawBackground(dst *ebiten.Image, g *world.Grid, cat *Catalog) {
	bg := cat.Tile(world.TileBackground)
	if bg == nil {
		return
	}
	ts := float64(cat.TileSize())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(c)*ts, float64(r)*ts)
			dst.DrawImage(bg, op)
		}
	}
}

// DrawTiles draws every cell of g holding an id of at least minID. Cells past
// the right edge of dst are skipped.
func DrawTiles(dst *ebiten.Image, g *world.Grid, cat *Catalog, minID int) {
	ts := cat.TileSize()
	width := dst.Bounds().Dx()
	g.Each(func(cell world.Cell, id int) {
		if id < minID || cell.Col*ts >= width {
			return
		}
		img := cat.Tile(id)
		if img == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(cell.Col*ts), float64(cell.Row*ts))
		dst.DrawImage(img, op)
	})
}

// DrawGridLines outlines every cell of a rows x cols grid.
func DrawGridLines(dst *ebiten.Image, rows, cols, tileSize int, clr color.Color) {
	w := float32(cols * tileSize)
	h := float32(rows * tileSize)
	for c := 0; c <= cols; c++ {
		x := float32(c * tileSize)
		if c == cols {
			x--
		}
		vector.StrokeLine(dst, x, 0, x, h, 1, clr, false)
	}
	for r := 0; r <= rows; r++ {
		y := float32(r * tileSize)
		vector.StrokeLine(dst, 0, y, w, y, 1, clr, false)
	}
}

// DrawOutline strokes a rectangle of the given thickness.
func DrawOutline(dst *ebiten.Image, x, y, w, h, thickness float32, clr color.Color) {
	vector.StrokeRect(dst, x, y, w, h, thickness, clr, false)
}
