// Package layout defines how the resize engine reads and writes the layout
// of the element it controls.
//
// The engine never touches a UI toolkit directly. Instead a host implements
// Host: it reports the element's rect, its parent's rect and available
// content box, the viewport, selector lookups for bounds targets and the
// flex context, and it accepts resolved sizes back through Apply.
//
// # Parent content box
//
// Browsers need a probe element (temporarily forcing flex-wrap) to learn how
// much room a parent offers a child. Hosts here answer the same question
// directly through ParentContent; MeasureParent adds the viewport fallback
// for detached elements.
//
// # Scene
//
// Scene is a headless host built from plain rects:
//
//	scene := layout.NewScene(geom.Size{Width: 1280, Height: 720}, geom.RectFromSize(40, 40, 200, 100)).
//	    WithParent(geom.RectFromSize(0, 0, 800, 600)).
//	    WithTarget("#canvas", geom.RectFromSize(0, 0, 1000, 700))
package layout
