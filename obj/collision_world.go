package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/tilegrid/common"
	"github.com/milk9111/tilegrid/world"
)

// SolidIndex is a broad-phase Collider backed by a chipmunk space of static
// boxes. Candidates come from the space's bounding-box tree and are confirmed
// with the same half-open test GridCollider uses, so both report identical
// results. The index is a snapshot of the solid tiles at build time; pickups
// are not solid, so removing them during play never invalidates it.
type SolidIndex struct {
	space  *cp.Space
	shapes int
}

// NewSolidIndex builds the index for every solid tile in g.
func NewSolidIndex(g *world.Grid, tileSize, pickupTile int) *SolidIndex {
	si := &SolidIndex{space: cp.NewSpace()}
	si.buildStaticShapes(g, tileSize, pickupTile)
	return si
}

func (si *SolidIndex) buildStaticShapes(g *world.Grid, tileSize, pickupTile int) {
	rows, cols := g.Rows(), g.Cols()
	solid := func(r, c int) bool {
		return IsSolidAt(g, world.Cell{Row: r, Col: c}, pickupTile)
	}

	// Merge contiguous solid tiles into larger rectangles so the tree holds
	// fewer boxes than one per tile.
	processed := make([]bool, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			idx := y*cols + x
			if processed[idx] {
				continue
			}
			if !solid(y, x) {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < cols && !processed[y*cols+x+w] && solid(y, x+w) {
				w++
			}

			h := 1
		heightLoop:
			for y+h < rows {
				for xi := x; xi < x+w; xi++ {
					if processed[(y+h)*cols+xi] || !solid(y+h, xi) {
						break heightLoop
					}
				}
				h++
			}

			rect := common.Rect{
				X:      float32(x * tileSize),
				Y:      float32(y * tileSize),
				Width:  float32(w * tileSize),
				Height: float32(h * tileSize),
			}
			shape := cp.NewBox2(si.space.StaticBody, rectBB(rect), 0)
			shape.UserData = rect
			si.space.AddShape(shape)
			si.shapes++

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*cols+xx] = true
				}
			}
		}
	}
}

// Shapes returns how many merged boxes the index holds.
func (si *SolidIndex) Shapes() int {
	return si.shapes
}

// Space exposes the chipmunk space for debug drawing.
func (si *SolidIndex) Space() *cp.Space {
	return si.space
}

func (si *SolidIndex) Collides(r common.Rect) bool {
	hit := false
	si.space.BBQuery(rectBB(r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if hit {
			return
		}
		if box, ok := shape.UserData.(common.Rect); ok && Overlaps(r, box) {
			hit = true
		}
	}, nil)
	return hit
}

func rectBB(r common.Rect) cp.BB {
	return cp.BB{
		L: float64(r.X),
		B: float64(r.Y),
		R: float64(r.X + r.Width),
		T: float64(r.Y + r.Height),
	}
}
