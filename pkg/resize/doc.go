// Package resize implements the resize-handle engine: given a handle
// direction and pointer samples, it computes the element's new size under
// min/max, boundary, aspect and snapping constraints.
//
// # Lifecycle
//
// An [Engine] is either Idle or Dragging. Hosts drive it through the three
// [Controller] entry points:
//
//	DragStart(dir, pointer)  Idle -> Dragging, captures the drag origin
//	DragMove(pointer)        recomputes the size against the origin
//	DragEnd()                Dragging -> Idle on up, leave or blur
//
// Every frame runs the same pipeline, in this order:
//
//  1. [CandidateSize] turns the pointer delta into a raw size
//  2. [EffectiveMax] intersects the caller's max with the boundary room
//  3. [Clamp] fits the size into [min, max], keeping an aspect lock intact
//  4. [GridSnap] then [PointSnap] quantize each axis
//
// The resolved pixel size is re-expressed in the unit the tracked size used
// at drag start (px, %, vw, vh, vmin, vmax or auto) and written back through
// [layout.Host.Apply].
//
// # Events
//
// A [Listener] gets one start event (which it may veto), one resize event
// per frame that changed the size, and one stop event. Deltas are always
// measured against the drag origin. A [Binder] is told when to attach and
// detach the host's global pointer listeners; Unbind runs on every path
// back to Idle.
//
// # Hosts
//
// The engine never touches a UI runtime directly. It reads geometry from and
// writes sizes to a [layout.Host]; [layout.Scene] is a headless one used by
// the simulator and tests.
package resize
