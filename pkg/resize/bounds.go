package resize

import (
	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
)

// Limit is an optional pixel bound.
type Limit struct {
	Value float64
	Set   bool
}

// LimitOf returns a set limit.
func LimitOf(v float64) Limit { return Limit{Value: v, Set: true} }

// Limits holds an optional bound per axis.
type Limits struct {
	Width, Height Limit
}

// Rects is the per-drag rect snapshot, already divided by the host scale.
// Boundary holds the parent or target rect when the bounds mode needs one.
type Rects struct {
	Element     geom.Rect
	Boundary    geom.Rect
	HasBoundary bool
}

// CaptureRects reads the element rect and, for parent and selector bounds,
// the boundary rect. It runs once per drag start. A selector that matches
// nothing fails with ErrCodeBoundsNotFound; a missing parent is not an
// error, it just leaves the drag unbounded.
func CaptureRects(h layout.Host, b Bounds, scale float64) (Rects, error) {
	inv := 1 / scale
	r := Rects{Element: h.Element().Scale(inv)}

	switch b.Mode {
	case BoundsParent:
		if p, ok := h.Parent(); ok {
			r.Boundary = p.Scale(inv)
			r.HasBoundary = true
		}
	case BoundsSelector:
		t, ok := h.Query(b.Selector)
		if !ok {
			return Rects{}, errors.New(errors.ErrCodeBoundsNotFound, "boundary target not found: %q", b.Selector)
		}
		r.Boundary = t.Scale(inv)
		r.HasBoundary = true
	}
	return r, nil
}

// EffectiveMax intersects the caller's maximum with the room left before
// the boundary edge. With byDirection, a drag on a leading edge (left, top)
// is measured from the element's trailing edge back to the boundary's
// leading edge, so growing leftward is limited by how far left the boundary
// extends. Non-finite boundary room never tightens the caller's maximum.
func EffectiveMax(dir geom.Direction, b Bounds, rects Rects, byDirection bool, viewport geom.Size, max Limits) Limits {
	widthByDir := byDirection && dir.Has(geom.Left)
	heightByDir := byDirection && dir.Has(geom.Top)
	el := rects.Element

	var room Limits
	switch b.Mode {
	case BoundsParent, BoundsSelector:
		if !rects.HasBoundary {
			return max
		}
		bd := rects.Boundary
		if widthByDir {
			room.Width = LimitOf(el.Right - bd.Left)
		} else {
			room.Width = LimitOf(bd.Width() + (bd.Left - el.Left))
		}
		if heightByDir {
			room.Height = LimitOf(el.Bottom - bd.Top)
		} else {
			room.Height = LimitOf(bd.Height() + (bd.Top - el.Top))
		}
	case BoundsViewport:
		if widthByDir {
			room.Width = LimitOf(el.Right)
		} else {
			room.Width = LimitOf(viewport.Width - el.Left)
		}
		if heightByDir {
			room.Height = LimitOf(el.Bottom)
		} else {
			room.Height = LimitOf(viewport.Height - el.Top)
		}
	default:
		return max
	}

	return Limits{
		Width:  tighten(max.Width, room.Width),
		Height: tighten(max.Height, room.Height),
	}
}

func tighten(caller, room Limit) Limit {
	if !room.Set || !geom.Finite(room.Value) {
		return caller
	}
	if caller.Set && caller.Value >= 0 && caller.Value < room.Value {
		return caller
	}
	return room
}
