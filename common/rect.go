package common

// Rect is an axis-aligned box in world pixels. Edges are half-open: a rect
// covers [X, X+Width) x [Y, Y+Height), so rects that only share an edge do
// not intersect.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Right() float32  { return r.X + r.Width }
func (r Rect) Bottom() float32 { return r.Y + r.Height }

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}
