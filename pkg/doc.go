// Package pkg provides the libraries behind resizable, a headless engine for
// resize handles.
//
// # Overview
//
// An element gets up to eight handles. A drag on a handle turns pointer
// movement into a new element size, constrained by limits, bounds, aspect
// locks and snapping, and re-expressed in the units the size started in.
// The engine never touches a real page: it reads and writes geometry through
// a small host interface, so it runs the same in a browser bridge, a
// terminal or a test.
//
// The packages:
//
//   - [unit] - dimension values (px, %, vw, vh, auto) and conversions
//   - [geom] - rects, points, sizes and the eight handle directions
//   - [layout] - the host interface and an in-memory scene
//   - [resize] - the drag state machine and size pipeline
//   - [store] - persisted sizes in files or redis
//   - [errors] - coded errors and input validation
//   - [observability] - hooks for drags and store traffic
//   - [buildinfo] - version metadata
//
// # Data Flow
//
//	pointer down  -> resize.Engine.DragStart  (capture origin, rects, lock)
//	pointer move  -> resize.Engine.DragMove   (candidate -> bounds -> clamp -> snap)
//	                                          -> layout.Host.Apply
//	pointer up    -> resize.Engine.DragEnd    (stop event, controlled size wins)
//	                                          -> store.Store.Save (optional)
//
// # Quick Start
//
//	scene := layout.NewScene(geom.Size{Width: 1280, Height: 720},
//	    geom.RectFromSize(0, 0, 200, 100))
//	e, err := resize.New(scene, resize.Options{
//	    Grid:   geom.Pair{X: 10, Y: 10},
//	    Bounds: resize.Bounds{Mode: resize.BoundsViewport},
//	})
//	if err != nil {
//	    return err
//	}
//	e.DragStart(geom.BottomRight, resize.Pointer{X: 200, Y: 100})
//	e.DragMove(resize.Pointer{X: 263, Y: 100})
//	e.DragEnd()
//	fmt.Println(e.Size()) // 260px x auto
//
// [unit]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/unit
// [geom]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/geom
// [layout]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/layout
// [resize]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/resize
// [store]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/store
// [errors]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/resizable/pkg/buildinfo
package pkg
