package resize

import "math"

// SnapValue rounds v to the nearest multiple of step. Non-positive steps
// leave v unchanged.
func SnapValue(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// GridSnap quantizes v to the grid. With gap 0 the rounded value always
// wins; otherwise it wins only when it is within gap of v.
func GridSnap(v, step, gap float64) float64 {
	snapped := SnapValue(v, step)
	if gap == 0 || math.Abs(snapped-v) <= gap {
		return snapped
	}
	return v
}

// PointSnap moves v to the closest point. With gap 0 the closest point
// always wins; otherwise it wins only when strictly closer than gap. Ties
// go to the earlier point.
func PointSnap(v float64, points []float64, gap float64) float64 {
	if len(points) == 0 {
		return v
	}
	best := points[0]
	for _, p := range points[1:] {
		if math.Abs(p-v) < math.Abs(best-v) {
			best = p
		}
	}
	if gap == 0 || math.Abs(best-v) < gap {
		return best
	}
	return v
}
