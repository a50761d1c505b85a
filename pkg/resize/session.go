package resize

import (
	"time"

	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/unit"
)

// Origin is the pointer position and element size at drag start. Every
// frame is computed against it, never against the previous frame.
type Origin struct {
	Pointer geom.Point
	Size    geom.Size
}

// session is the per-drag scratch state. It exists only while Dragging.
type session struct {
	id        string
	direction geom.Direction
	cursor    string
	origin    Origin
	rects     Rects
	lock      Lock
	flex      layout.FlexDirection
	started   time.Time

	// units records what the tracked size was expressed in at drag start.
	widthUnit  unit.Unit
	heightUnit unit.Unit
}

// Frame is the outcome of one pointer move.
type Frame struct {
	// Size is the resolved size re-expressed in the drag's unit system.
	Size unit.Size
	// FlexBasis mirrors the flex main axis; unset outside flex layouts.
	FlexBasis unit.Dimension
	// Pixels is the resolved size before re-expression.
	Pixels geom.Size
	// Delta is Pixels minus the origin size.
	Delta geom.Delta
}
