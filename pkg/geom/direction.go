package geom

import (
	"strings"

	"github.com/matzehuels/resizable/pkg/errors"
)

// Direction names the edge or corner handle being dragged.
type Direction string

// Handle directions. Corner tags activate both adjacent edges.
const (
	Top         Direction = "top"
	Right       Direction = "right"
	Bottom      Direction = "bottom"
	Left        Direction = "left"
	TopRight    Direction = "topRight"
	BottomRight Direction = "bottomRight"
	BottomLeft  Direction = "bottomLeft"
	TopLeft     Direction = "topLeft"
)

// Directions lists every handle in rendering order.
var Directions = []Direction{Top, Right, Bottom, Left, TopRight, BottomRight, BottomLeft, TopLeft}

// ParseDirection converts a handle tag into a Direction.
func ParseDirection(s string) (Direction, error) {
	if err := errors.ValidateDirection(s); err != nil {
		return "", err
	}
	return Direction(s), nil
}

// Has reports whether d activates the given edge. Matching is
// case-insensitive on the tag, so TopRight satisfies both Top and Right.
func (d Direction) Has(edge Direction) bool {
	return strings.Contains(strings.ToLower(string(d)), strings.ToLower(string(edge)))
}

// Horizontal reports whether d moves the left or right edge.
func (d Direction) Horizontal() bool { return d.Has(Left) || d.Has(Right) }

// Vertical reports whether d moves the top or bottom edge.
func (d Direction) Vertical() bool { return d.Has(Top) || d.Has(Bottom) }

// Valid reports whether d is one of the eight handle tags.
func (d Direction) Valid() bool { return errors.ValidateDirection(string(d)) == nil }

// Cursor returns the CSS cursor hint for the handle.
func (d Direction) Cursor() string {
	switch d {
	case Top, Bottom:
		return "row-resize"
	case Left, Right:
		return "col-resize"
	case TopLeft:
		return "nw-resize"
	case TopRight:
		return "ne-resize"
	case BottomLeft:
		return "sw-resize"
	case BottomRight:
		return "se-resize"
	}
	return "auto"
}

func (d Direction) String() string { return string(d) }

// Enable says which handles accept a drag. Handles missing from the map,
// or from a nil map, are enabled; only an explicit false turns one off.
type Enable map[Direction]bool

// AllEnabled returns a map with all eight handles turned on.
func AllEnabled() Enable {
	e := make(Enable, len(Directions))
	for _, d := range Directions {
		e[d] = true
	}
	return e
}

// Enabled reports whether the handle for d is interactive.
func (e Enable) Enabled(d Direction) bool {
	on, ok := e[d]
	return !ok || on
}
