package resize_test

import (
	"fmt"

	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/resize"
	"github.com/matzehuels/resizable/pkg/unit"
)

func ExampleEngine() {
	scene := layout.NewScene(geom.Size{Width: 1280, Height: 720}, geom.RectFromSize(0, 0, 200, 100)).
		WithParent(geom.RectFromSize(0, 0, 400, 300))

	engine, err := resize.New(scene, resize.Options{
		DefaultSize: unit.Size{Width: unit.Percent(50), Height: unit.Px(100)},
		MaxWidth:    unit.Px(300),
		Listener: resize.Callbacks{
			Stop: func(e resize.ResizeEvent) {
				fmt.Printf("stop %s: %+v\n", e.Direction, e.Delta)
			},
		},
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	_ = engine.DragStart(geom.BottomRight, resize.Pointer{X: 200, Y: 100})
	for _, x := range []float64{240, 300, 500} {
		f, _ := engine.DragMove(resize.Pointer{X: x, Y: 120})
		fmt.Println(f.Size)
	}
	engine.DragEnd()

	fmt.Println(scene.Element().Size())
	// Output:
	// 60% x 120px
	// 75% x 120px
	// 75% x 120px
	// stop bottomRight: {Width:100 Height:20}
	// {300 120}
}

func ExampleGridSnap() {
	fmt.Println(resize.GridSnap(147, 10, 0))
	fmt.Println(resize.GridSnap(147, 10, 2))
	// Output:
	// 150
	// 147
}

func ExampleEffectiveMax() {
	rects := resize.Rects{
		Element:     geom.RectFromSize(50, 0, 100, 100),
		Boundary:    geom.RectFromSize(0, 0, 600, 400),
		HasBoundary: true,
	}
	parent := resize.Bounds{Mode: resize.BoundsParent}

	right := resize.EffectiveMax(geom.Right, parent, rects, true, geom.Size{}, resize.Limits{})
	left := resize.EffectiveMax(geom.Left, parent, rects, true, geom.Size{}, resize.Limits{})
	fmt.Println(right.Width.Value, left.Width.Value)
	// Output:
	// 550 150
}
