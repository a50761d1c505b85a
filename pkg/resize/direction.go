package resize

import (
	"github.com/matzehuels/resizable/pkg/geom"
)

// Lock is a resolved aspect lock for one drag. A zero Ratio means unlocked.
type Lock struct {
	Ratio       float64
	ExtraWidth  float64
	ExtraHeight float64
}

// Active reports whether the lock couples the axes. Zero, negative and
// non-finite ratios never lock.
func (l Lock) Active() bool { return l.Ratio > 0 && geom.Finite(l.Ratio) }

// widthFor returns the width implied by height under the lock.
func (l Lock) widthFor(height float64) float64 {
	return (height-l.ExtraHeight)*l.Ratio + l.ExtraWidth
}

// heightFor returns the height implied by width under the lock.
func (l Lock) heightFor(width float64) float64 {
	return (width-l.ExtraWidth)/l.Ratio + l.ExtraHeight
}

// CandidateSize turns a pointer delta since drag start into a new size.
// Right and bottom handles grow with positive deltas; left and top handles
// grow with negative ones. Corner handles apply both rules, and under an
// active lock the vertical rule runs last, so for corners height drives.
func CandidateSize(dir geom.Direction, delta geom.Point, origin geom.Size, ratio geom.Pair, scale float64, lock Lock) geom.Size {
	w, h := origin.Width, origin.Height
	dx := delta.X * ratio.X / scale
	dy := delta.Y * ratio.Y / scale
	locked := lock.Active()

	if dir.Has(geom.Right) {
		w = origin.Width + dx
		if locked {
			h = lock.heightFor(w)
		}
	}
	if dir.Has(geom.Left) {
		w = origin.Width - dx
		if locked {
			h = lock.heightFor(w)
		}
	}
	if dir.Has(geom.Bottom) {
		h = origin.Height + dy
		if locked {
			w = lock.widthFor(h)
		}
	}
	if dir.Has(geom.Top) {
		h = origin.Height - dy
		if locked {
			w = lock.widthFor(h)
		}
	}
	return geom.Size{Width: w, Height: h}
}
