package resize

import (
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/unit"
)

// Button identifies the pointer button behind an event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Pointer is a normalized pointer or touch sample supplied by the host.
type Pointer struct {
	X, Y   float64
	Button Button

	// Touch marks touch input. Secondary is set for every touch point after
	// the first; those samples are ignored.
	Touch     bool
	Secondary bool

	// Cursor is the host's cursor under the pointer at press time. Empty
	// means the handle's own cursor.
	Cursor string
}

func (p Pointer) point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

// StartEvent is emitted on Idle to Dragging.
type StartEvent struct {
	Session   string
	Direction geom.Direction
	Cursor    string
	Pointer   geom.Point
}

// ResizeEvent is emitted for each frame that changed the size, and once
// more at drag end. Delta is always measured against the drag origin.
type ResizeEvent struct {
	Session   string
	Direction geom.Direction
	Delta     geom.Delta
	Size      unit.Size
	FlexBasis unit.Dimension
}

// Listener receives lifecycle notifications. OnResizeStart may return false
// to veto the drag.
type Listener interface {
	OnResizeStart(e StartEvent) bool
	OnResize(e ResizeEvent)
	OnResizeStop(e ResizeEvent)
}

// Callbacks adapts plain functions to Listener. Nil fields are skipped and
// a nil Start accepts every drag.
type Callbacks struct {
	Start  func(StartEvent) bool
	Resize func(ResizeEvent)
	Stop   func(ResizeEvent)
}

func (c Callbacks) OnResizeStart(e StartEvent) bool {
	if c.Start == nil {
		return true
	}
	return c.Start(e)
}

func (c Callbacks) OnResize(e ResizeEvent) {
	if c.Resize != nil {
		c.Resize(e)
	}
}

func (c Callbacks) OnResizeStop(e ResizeEvent) {
	if c.Stop != nil {
		c.Stop(e)
	}
}

// Binder attaches and detaches the host's global move/up/leave listeners.
// The engine calls Bind once when a drag starts and Unbind once when it
// ends, whatever ended it.
type Binder interface {
	Bind()
	Unbind()
}

type nopBinder struct{}

func (nopBinder) Bind()   {}
func (nopBinder) Unbind() {}
