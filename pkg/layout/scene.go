package layout

import (
	"github.com/matzehuels/resizable/pkg/geom"
)

// Scene is a headless Host backed by plain rects. It stands in for a real
// UI runtime in the simulator and in tests: Apply moves the element rect,
// so later reads observe the written size just like live layout would.
type Scene struct {
	element  geom.Rect
	parent   *geom.Rect
	content  *geom.Size
	viewport geom.Size
	targets  map[string]geom.Rect
	flex     FlexDirection
	scale    float64
	writes   int
}

// NewScene creates a scene with a detached element inside a viewport.
func NewScene(viewport geom.Size, element geom.Rect) *Scene {
	return &Scene{
		element:  element,
		viewport: viewport,
		targets:  make(map[string]geom.Rect),
		scale:    1,
	}
}

// WithParent attaches the element to a parent rect.
func (s *Scene) WithParent(r geom.Rect) *Scene {
	s.parent = &r
	return s
}

// WithContent overrides the parent's content box. Without it the content
// box is the parent rect's size.
func (s *Scene) WithContent(size geom.Size) *Scene {
	s.content = &size
	return s
}

// WithTarget registers a bounds target under selector.
func (s *Scene) WithTarget(selector string, r geom.Rect) *Scene {
	s.targets[selector] = r
	return s
}

// WithFlex makes the element a flex item along dir.
func (s *Scene) WithFlex(dir FlexDirection) *Scene {
	s.flex = dir
	return s
}

// WithScale sets the zoom factor between written sizes and measured rects.
// A size of 100 applied at scale 2 occupies 200 in every rect the scene
// reports.
func (s *Scene) WithScale(f float64) *Scene {
	s.scale = f
	return s
}

// SetViewport changes the window size, e.g. mid-drag.
func (s *Scene) SetViewport(size geom.Size) { s.viewport = size }

// Detach removes the parent.
func (s *Scene) Detach() {
	s.parent = nil
	s.content = nil
}

// Writes returns how many times Apply was called.
func (s *Scene) Writes() int { return s.writes }

func (s *Scene) Element() geom.Rect { return s.element }

func (s *Scene) Parent() (geom.Rect, bool) {
	if s.parent == nil {
		return geom.Rect{}, false
	}
	return *s.parent, true
}

func (s *Scene) ParentContent() (geom.Size, bool) {
	if s.parent == nil {
		return geom.Size{}, false
	}
	if s.content != nil {
		return *s.content, true
	}
	return s.parent.Size(), true
}

func (s *Scene) Viewport() geom.Size { return s.viewport }

func (s *Scene) Query(selector string) (geom.Rect, bool) {
	r, ok := s.targets[selector]
	return r, ok
}

func (s *Scene) FlexDirection() FlexDirection {
	if s.parent == nil {
		return FlexNone
	}
	return s.flex
}

func (s *Scene) Apply(dir geom.Direction, size geom.Size) {
	s.element = s.element.Resize(dir, geom.Size{Width: size.Width * s.scale, Height: size.Height * s.scale})
	s.writes++
}

var _ Host = (*Scene)(nil)
