package resize

import (
	"math"
	"testing"

	"github.com/matzehuels/resizable/pkg/geom"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		candidate geom.Size
		max, min  Limits
		want      geom.Size
	}{
		{
			name:      "no limits keeps candidate",
			candidate: geom.Size{Width: 500, Height: 400},
			want:      geom.Size{Width: 500, Height: 400},
		},
		{
			name:      "default minimum",
			candidate: geom.Size{Width: 2, Height: -30},
			want:      geom.Size{Width: DefaultMinSize, Height: DefaultMinSize},
		},
		{
			name:      "explicit bounds",
			candidate: geom.Size{Width: 500, Height: 5},
			max:       Limits{Width: LimitOf(300), Height: LimitOf(300)},
			min:       Limits{Width: LimitOf(50), Height: LimitOf(50)},
			want:      geom.Size{Width: 300, Height: 50},
		},
		{
			name:      "negative max is no ceiling",
			candidate: geom.Size{Width: 500, Height: 400},
			max:       Limits{Width: LimitOf(-1), Height: LimitOf(-1)},
			want:      geom.Size{Width: 500, Height: 400},
		},
		{
			name:      "min wins over max",
			candidate: geom.Size{Width: 500, Height: 400},
			max:       Limits{Width: LimitOf(20)},
			min:       Limits{Width: LimitOf(40)},
			want:      geom.Size{Width: 40, Height: 400},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.candidate, tt.max, tt.min, Lock{}); got != tt.want {
				t.Errorf("Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClampLockedKeepsRatio(t *testing.T) {
	lock := Lock{Ratio: 2, ExtraWidth: 10}
	max := Limits{Width: LimitOf(210), Height: LimitOf(150)}
	min := Limits{Width: LimitOf(30), Height: LimitOf(20)}

	for h := 0.0; h <= 300; h += 17 {
		candidate := geom.Size{Width: lock.widthFor(h), Height: h}
		got := Clamp(candidate, max, min, lock)

		if got.Width > 210 || got.Width < 30 || got.Height > 150 || got.Height < 20 {
			t.Errorf("Clamp(%+v) = %+v, outside limits", candidate, got)
		}
		if want := got.Height*lock.Ratio + lock.ExtraWidth; math.Abs(got.Width-want) > 1e-9 {
			t.Errorf("Clamp(%+v) = %+v, width should be %v", candidate, got, want)
		}
	}
}
