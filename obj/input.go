package obj

// Controls is the directional input held during one tick.
type Controls struct {
	Left, Right, Up, Down bool
}
