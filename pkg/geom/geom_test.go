package geom

import (
	"encoding/json"
	"testing"
)

func TestDirectionHas(t *testing.T) {
	tests := []struct {
		dir                      Direction
		top, right, bottom, left bool
	}{
		{Top, true, false, false, false},
		{Right, false, true, false, false},
		{Bottom, false, false, true, false},
		{Left, false, false, false, true},
		{TopRight, true, true, false, false},
		{BottomRight, false, true, true, false},
		{BottomLeft, false, false, true, true},
		{TopLeft, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			if got := tt.dir.Has(Top); got != tt.top {
				t.Errorf("Has(Top) = %v, want %v", got, tt.top)
			}
			if got := tt.dir.Has(Right); got != tt.right {
				t.Errorf("Has(Right) = %v, want %v", got, tt.right)
			}
			if got := tt.dir.Has(Bottom); got != tt.bottom {
				t.Errorf("Has(Bottom) = %v, want %v", got, tt.bottom)
			}
			if got := tt.dir.Has(Left); got != tt.left {
				t.Errorf("Has(Left) = %v, want %v", got, tt.left)
			}
		})
	}
}

func TestDirectionCursor(t *testing.T) {
	want := map[Direction]string{
		Top:         "row-resize",
		Bottom:      "row-resize",
		Left:        "col-resize",
		Right:       "col-resize",
		TopLeft:     "nw-resize",
		TopRight:    "ne-resize",
		BottomLeft:  "sw-resize",
		BottomRight: "se-resize",
	}
	for d, w := range want {
		if got := d.Cursor(); got != w {
			t.Errorf("%s.Cursor() = %q, want %q", d, got, w)
		}
	}
	if got := Direction("nope").Cursor(); got != "auto" {
		t.Errorf("unknown Cursor() = %q, want auto", got)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("bottomLeft")
	if err != nil {
		t.Fatalf("ParseDirection error: %v", err)
	}
	if d != BottomLeft {
		t.Errorf("ParseDirection = %v, want %v", d, BottomLeft)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(diagonal) should fail")
	}
}

func TestEnable(t *testing.T) {
	var all Enable
	for _, d := range Directions {
		if !all.Enabled(d) {
			t.Errorf("nil Enable should enable %s", d)
		}
	}

	noTop := Enable{Top: false, Right: true}
	if noTop.Enabled(Top) {
		t.Error("Top should be disabled")
	}
	for _, d := range []Direction{Right, Left, Bottom, TopLeft} {
		if !noTop.Enabled(d) {
			t.Errorf("missing or true entry %s should be enabled", d)
		}
	}

	if got := len(AllEnabled()); got != 8 {
		t.Errorf("AllEnabled() has %d entries, want 8", got)
	}
}

func TestRectResize(t *testing.T) {
	r := RectFromSize(10, 20, 100, 50)

	tests := []struct {
		dir  Direction
		want Rect
	}{
		{Right, Rect{Left: 10, Top: 20, Right: 130, Bottom: 80}},
		{Bottom, Rect{Left: 10, Top: 20, Right: 130, Bottom: 80}},
		{Left, Rect{Left: -10, Top: 20, Right: 110, Bottom: 80}},
		{Top, Rect{Left: 10, Top: 10, Right: 130, Bottom: 70}},
		{TopLeft, Rect{Left: -10, Top: 10, Right: 110, Bottom: 70}},
	}

	for _, tt := range tests {
		t.Run(string(tt.dir), func(t *testing.T) {
			if got := r.Resize(tt.dir, Size{Width: 120, Height: 60}); got != tt.want {
				t.Errorf("Resize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPairUnmarshal(t *testing.T) {
	var p Pair
	if err := p.UnmarshalTOML(int64(4)); err != nil || p != (Pair{4, 4}) {
		t.Errorf("UnmarshalTOML(4) = %+v, %v", p, err)
	}
	if err := p.UnmarshalTOML([]any{int64(2), 0.5}); err != nil || p != (Pair{2, 0.5}) {
		t.Errorf("UnmarshalTOML([2, 0.5]) = %+v, %v", p, err)
	}
	if err := p.UnmarshalTOML([]any{int64(2)}); err == nil {
		t.Error("UnmarshalTOML with one element should fail")
	}
	if err := p.UnmarshalTOML("wide"); err == nil {
		t.Error("UnmarshalTOML(string) should fail")
	}

	if err := json.Unmarshal([]byte(`[10, 20]`), &p); err != nil || p != (Pair{10, 20}) {
		t.Errorf("json [10,20] = %+v, %v", p, err)
	}
	if err := json.Unmarshal([]byte(`3`), &p); err != nil || p != (Pair{3, 3}) {
		t.Errorf("json 3 = %+v, %v", p, err)
	}
}
