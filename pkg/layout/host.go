package layout

import (
	"github.com/matzehuels/resizable/pkg/geom"
)

// FlexDirection is the main axis of the parent's flex layout.
type FlexDirection int

const (
	// FlexNone means the element is not sized by a flex basis.
	FlexNone FlexDirection = iota
	FlexRow
	FlexColumn
)

func (f FlexDirection) String() string {
	switch f {
	case FlexRow:
		return "row"
	case FlexColumn:
		return "column"
	}
	return "none"
}

// ParseFlexDirection accepts the CSS flex-direction keywords. The reverse
// variants map onto their base axis; anything else is FlexNone.
func ParseFlexDirection(s string) FlexDirection {
	switch s {
	case "row", "row-reverse":
		return FlexRow
	case "column", "column-reverse":
		return FlexColumn
	}
	return FlexNone
}

// Host is the engine's view of the layout it runs inside. Implementations
// adapt a concrete UI runtime; Scene is a headless one.
//
// All rects are absolute client rects as rendered, i.e. with the host's
// zoom factor applied. Reads happen at drag start
// (rects) and on every move (parent content box, viewport), so hosts must
// answer from live layout rather than a cached copy.
type Host interface {
	// Element returns the resizable element's bounding rect.
	Element() geom.Rect

	// Parent returns the parent's bounding rect, false when the element is
	// detached.
	Parent() (geom.Rect, bool)

	// ParentContent returns the parent's available content box: the space a
	// full-size child would get, excluding the resizable element's own
	// contribution. False when the element is detached.
	ParentContent() (geom.Size, bool)

	// Viewport returns the window's inner size.
	Viewport() geom.Size

	// Query looks up a bounds target by selector.
	Query(selector string) (geom.Rect, bool)

	// FlexDirection reports the parent's main axis when the element is a
	// flex item with a non-auto basis, FlexNone otherwise.
	FlexDirection() FlexDirection

	// Apply writes a resolved size back into layout. The size is in layout
	// units, before the host's zoom factor is applied to it. dir tells the
	// host which edges moved so it can keep the opposite edges anchored.
	Apply(dir geom.Direction, size geom.Size)
}

// MeasureParent returns the parent's content box, falling back to the
// viewport when the element has no parent.
func MeasureParent(h Host) geom.Size {
	if s, ok := h.ParentContent(); ok {
		return s
	}
	return h.Viewport()
}
