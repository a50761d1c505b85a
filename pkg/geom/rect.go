package geom

import "math"

// Rect is an absolute bounding rectangle.
// Coordinates grow rightward and downward, like client coordinates.
type Rect struct {
	Left, Top     float64
	Right, Bottom float64
}

// RectFromSize builds a rect anchored at (left, top).
func RectFromSize(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Size returns the rect's extent.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Scale multiplies every coordinate by f.
func (r Rect) Scale(f float64) Rect {
	return Rect{Left: r.Left * f, Top: r.Top * f, Right: r.Right * f, Bottom: r.Bottom * f}
}

// Resize returns a rect of the given size that keeps the edges opposite to
// dir fixed. Dragging a left or top handle moves that edge; every other
// handle keeps the top-left corner in place.
func (r Rect) Resize(dir Direction, s Size) Rect {
	out := RectFromSize(r.Left, r.Top, s.Width, s.Height)
	if dir.Has(Left) {
		out.Left = r.Right - s.Width
		out.Right = r.Right
	}
	if dir.Has(Top) {
		out.Top = r.Bottom - s.Height
		out.Bottom = r.Bottom
	}
	return out
}

// Point is a pointer position in client coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size is a concrete width/height pair in logical pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sub returns the per-axis difference s - o as a Delta.
func (s Size) Sub(o Size) Delta {
	return Delta{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Delta is a size change measured against the drag origin.
type Delta struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsZero reports whether neither axis changed.
func (d Delta) IsZero() bool { return d.Width == 0 && d.Height == 0 }

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
