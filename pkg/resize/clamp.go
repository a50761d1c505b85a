package resize

import (
	"math"

	"github.com/matzehuels/resizable/pkg/geom"
)

// Clamp fits a candidate size into [min, max] per axis. Unset minimums
// default to DefaultMinSize; unset or negative maximums default to the
// candidate itself, i.e. no ceiling.
//
// Under an active lock the width bounds implied by the height bounds (and
// the reverse) are intersected with the axis' own bounds first, so a single
// clamp cannot break the ratio at the boundary.
func Clamp(candidate geom.Size, max, min Limits, lock Lock) geom.Size {
	minW := orDefault(min.Width, DefaultMinSize)
	minH := orDefault(min.Height, DefaultMinSize)
	maxW := ceiling(max.Width, candidate.Width)
	maxH := ceiling(max.Height, candidate.Height)

	if !lock.Active() {
		return geom.Size{
			Width:  clamp(candidate.Width, minW, maxW),
			Height: clamp(candidate.Height, minH, maxH),
		}
	}

	lockedMinW := math.Max(minW, lock.widthFor(minH))
	lockedMaxW := math.Min(maxW, lock.widthFor(maxH))
	lockedMinH := math.Max(minH, lock.heightFor(minW))
	lockedMaxH := math.Min(maxH, lock.heightFor(maxW))

	return geom.Size{
		Width:  clamp(candidate.Width, lockedMinW, lockedMaxW),
		Height: clamp(candidate.Height, lockedMinH, lockedMaxH),
	}
}

func orDefault(l Limit, def float64) float64 {
	if l.Set {
		return l.Value
	}
	return def
}

func ceiling(l Limit, candidate float64) float64 {
	if !l.Set || l.Value < 0 {
		return candidate
	}
	return l.Value
}

// clamp favors min when the range is empty.
func clamp(n, min, max float64) float64 {
	return math.Max(math.Min(n, max), min)
}
