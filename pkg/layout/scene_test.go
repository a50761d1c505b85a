package layout

import (
	"testing"

	"github.com/matzehuels/resizable/pkg/geom"
)

func TestSceneDetached(t *testing.T) {
	s := NewScene(geom.Size{Width: 800, Height: 600}, geom.RectFromSize(10, 10, 100, 50))

	if _, ok := s.Parent(); ok {
		t.Error("detached scene should have no parent")
	}
	if got := MeasureParent(s); got != (geom.Size{Width: 800, Height: 600}) {
		t.Errorf("MeasureParent() = %+v, want viewport", got)
	}
	if got := s.FlexDirection(); got != FlexNone {
		t.Errorf("FlexDirection() = %v, want none", got)
	}
}

func TestSceneParentContent(t *testing.T) {
	s := NewScene(geom.Size{Width: 800, Height: 600}, geom.RectFromSize(10, 10, 100, 50)).
		WithParent(geom.RectFromSize(0, 0, 400, 300)).
		WithFlex(FlexRow)

	if got := MeasureParent(s); got != (geom.Size{Width: 400, Height: 300}) {
		t.Errorf("MeasureParent() = %+v, want parent rect size", got)
	}

	s.WithContent(geom.Size{Width: 380, Height: 280})
	if got := MeasureParent(s); got != (geom.Size{Width: 380, Height: 280}) {
		t.Errorf("MeasureParent() = %+v, want content override", got)
	}
	if got := s.FlexDirection(); got != FlexRow {
		t.Errorf("FlexDirection() = %v, want row", got)
	}

	s.Detach()
	if got := s.FlexDirection(); got != FlexNone {
		t.Errorf("FlexDirection() after Detach = %v, want none", got)
	}
}

func TestSceneApplyAnchorsOppositeEdge(t *testing.T) {
	s := NewScene(geom.Size{Width: 800, Height: 600}, geom.RectFromSize(100, 100, 100, 50))

	s.Apply(geom.Left, geom.Size{Width: 150, Height: 50})
	if got := s.Element(); got.Right != 200 || got.Left != 50 {
		t.Errorf("Element() after left resize = %+v", got)
	}

	s.Apply(geom.BottomRight, geom.Size{Width: 160, Height: 70})
	if got := s.Element(); got.Left != 50 || got.Top != 100 || got.Width() != 160 || got.Height() != 70 {
		t.Errorf("Element() after bottomRight resize = %+v", got)
	}
	if s.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", s.Writes())
	}
}

func TestSceneQuery(t *testing.T) {
	s := NewScene(geom.Size{Width: 800, Height: 600}, geom.Rect{}).
		WithTarget("#canvas", geom.RectFromSize(0, 0, 500, 500))

	if _, ok := s.Query("#canvas"); !ok {
		t.Error("Query(#canvas) should match")
	}
	if _, ok := s.Query("#missing"); ok {
		t.Error("Query(#missing) should not match")
	}
}

func TestParseFlexDirection(t *testing.T) {
	tests := map[string]FlexDirection{
		"row":            FlexRow,
		"row-reverse":    FlexRow,
		"column":         FlexColumn,
		"column-reverse": FlexColumn,
		"":               FlexNone,
		"grid":           FlexNone,
	}
	for in, want := range tests {
		if got := ParseFlexDirection(in); got != want {
			t.Errorf("ParseFlexDirection(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSceneScale(t *testing.T) {
	s := NewScene(geom.Size{Width: 800, Height: 600}, geom.RectFromSize(0, 0, 200, 100)).WithScale(2)

	s.Apply(geom.Right, geom.Size{Width: 150, Height: 50})
	if got := s.Element().Size(); got != (geom.Size{Width: 300, Height: 100}) {
		t.Errorf("Element().Size() = %+v, want 300x100", got)
	}
}
