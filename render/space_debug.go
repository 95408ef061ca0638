package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// DrawSpace outlines the shapes of a chipmunk space, such as the merged
// solid boxes of a broad-phase index.
func DrawSpace(screen *ebiten.Image, space *cp.Space) {
	if screen == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{screen: screen})
}

type spaceDrawer struct {
	screen *ebiten.Image
}

func (d *spaceDrawer) line(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, fcolorToRGBA(c), false)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	vector.StrokeCircle(d.screen, float32(pos.X), float32(pos.Y), float32(radius), 1, fcolorToRGBA(outline), false)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fill)
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, outline)
}

// DrawPolygon strokes the outline and shades the interior of a static box.
func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	bb := cp.BB{L: verts[0].X, B: verts[0].Y, R: verts[0].X, T: verts[0].Y}
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], outline)
		bb = bb.Expand(verts[i])
	}
	shade := fcolorToRGBA(fill)
	shade.A = 48
	vector.FillRect(d.screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), shade, false)
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	vector.FillCircle(d.screen, float32(pos.X), float32(pos.Y), float32(size/2), fcolorToRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 1}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 0.2, A: 1}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
