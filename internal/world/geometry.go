package world

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) lies inside r. Edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w×h rect whose center coincides with r's center.
func (r Rect) Centered(w, h float64) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// MoveTo returns r with its top-left corner at (x, y).
func (r Rect) MoveTo(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}
