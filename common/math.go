package common

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
