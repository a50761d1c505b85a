package resize

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/layout"
	"github.com/matzehuels/resizable/pkg/observability"
	"github.com/matzehuels/resizable/pkg/unit"
)

// Controller is the capability hosts drive. Host-specific event glue calls
// these three entry points and nothing else.
type Controller interface {
	DragStart(dir geom.Direction, p Pointer) error
	DragMove(p Pointer) (Frame, bool)
	DragEnd()
}

// Engine resizes one element. It is not safe for concurrent use: a host
// feeds it events from a single event loop, one drag at a time.
type Engine struct {
	host   layout.Host
	opts   Options
	logger *log.Logger

	// size is the tracked size, the only state kept across drags.
	size      unit.Size
	flexBasis unit.Dimension

	sess *session
}

var _ Controller = (*Engine)(nil)

// New creates an idle engine for the element behind host. The tracked size
// starts from opts.Size, then opts.DefaultSize, then "auto"; concrete axes
// are written to the host right away.
func New(host layout.Host, opts Options) (*Engine, error) {
	if host == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "host is required")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	e := &Engine{
		host:   host,
		opts:   opts,
		logger: opts.Logger,
		size: unit.Size{
			Width:  opts.Size.Width.Or(opts.DefaultSize.Width).Or(unit.Auto()),
			Height: opts.Size.Height.Or(opts.DefaultSize.Height).Or(unit.Auto()),
		},
	}
	if !e.size.Width.IsAuto() || !e.size.Height.IsAuto() {
		e.writeTracked()
	}
	return e, nil
}

// =============================================================================
// Lifecycle
// =============================================================================

// DragStart moves the engine from Idle to Dragging. Secondary buttons and
// secondary touch points are ignored. Setup failures (unknown or disabled
// handle, missing bounds target) return an error and leave the engine Idle.
// A listener veto also leaves it Idle, without an error.
func (e *Engine) DragStart(dir geom.Direction, p Pointer) error {
	if p.Touch && p.Secondary {
		return nil
	}
	if !p.Touch && p.Button != ButtonPrimary {
		return nil
	}
	if e.sess != nil {
		return errors.New(errors.ErrCodeInvalidInput, "drag already in progress on %q", e.sess.direction)
	}
	if err := errors.ValidateDirection(string(dir)); err != nil {
		return e.reject(dir, err)
	}
	if !e.opts.Enable.Enabled(dir) {
		return e.reject(dir, errors.New(errors.ErrCodeHandleDisabled, "handle %q is disabled", dir))
	}

	rects, err := CaptureRects(e.host, e.opts.Bounds, e.opts.Scale)
	if err != nil {
		return e.reject(dir, err)
	}

	id := uuid.NewString()
	cursor := p.Cursor
	if cursor == "" {
		cursor = dir.Cursor()
	}
	if !e.opts.Listener.OnResizeStart(StartEvent{Session: id, Direction: dir, Cursor: cursor, Pointer: p.point()}) {
		e.logger.Debug("drag vetoed", "direction", dir)
		return nil
	}

	// A controlled size that drifted from the tracked one takes over first.
	e.adoptControlled()

	origin := Origin{Pointer: p.point(), Size: e.measure()}
	e.sess = &session{
		id:         id,
		direction:  dir,
		cursor:     cursor,
		origin:     origin,
		rects:      rects,
		lock:       e.lockFor(origin.Size),
		flex:       e.host.FlexDirection(),
		started:    time.Now(),
		widthUnit:  e.size.Width.Unit,
		heightUnit: e.size.Height.Unit,
	}
	e.opts.Binder.Bind()

	observability.Drag().OnDragStart(id, string(dir))
	e.logger.Debug("drag start", "session", id, "direction", dir,
		"width", origin.Size.Width, "height", origin.Size.Height)
	return nil
}

// DragMove runs the constraint pipeline for one pointer sample and returns
// the resulting frame. The bool is true when the frame changed the tracked
// size or flex basis; only then is the size written back and a resize
// event emitted.
func (e *Engine) DragMove(p Pointer) (Frame, bool) {
	s := e.sess
	if s == nil || (p.Touch && p.Secondary) {
		return Frame{}, false
	}

	// Relative constraints are resolved per frame: the viewport or parent
	// may change mid-drag.
	parent := layout.MeasureParent(e.host)
	vp := e.host.Viewport()
	max := Limits{
		Width:  resolve(e.opts.MaxWidth, parent.Width, vp),
		Height: resolve(e.opts.MaxHeight, parent.Height, vp),
	}
	min := Limits{
		Width:  resolve(e.opts.MinWidth, parent.Width, vp),
		Height: resolve(e.opts.MinHeight, parent.Height, vp),
	}

	candidate := CandidateSize(s.direction, p.point().Sub(s.origin.Pointer), s.origin.Size, e.opts.ResizeRatio, e.opts.Scale, s.lock)
	bounded := EffectiveMax(s.direction, e.opts.Bounds, s.rects, e.opts.boundsByDirection(), vp, max)
	size := Clamp(candidate, bounded, min, s.lock)
	size.Width = GridSnap(size.Width, e.opts.Grid.X, e.opts.SnapGap)
	size.Height = GridSnap(size.Height, e.opts.Grid.Y, e.opts.SnapGap)
	size.Width = PointSnap(size.Width, e.opts.Snap.X, e.opts.SnapGap)
	size.Height = PointSnap(size.Height, e.opts.Snap.Y, e.opts.SnapGap)

	f := Frame{
		Pixels: size,
		Delta:  size.Sub(s.origin.Size),
		Size: unit.Size{
			Width:  express(size.Width, s.widthUnit, parent.Width, vp, s.origin.Size.Width, e.opts.Size.Width),
			Height: express(size.Height, s.heightUnit, parent.Height, vp, s.origin.Size.Height, e.opts.Size.Height),
		},
	}
	switch s.flex {
	case layout.FlexRow:
		f.FlexBasis = f.Size.Width
	case layout.FlexColumn:
		f.FlexBasis = f.Size.Height
	}

	if f.Size == e.size && f.FlexBasis == e.flexBasis {
		return f, false
	}
	e.size = f.Size
	e.flexBasis = f.FlexBasis
	e.host.Apply(s.direction, size)

	e.opts.Listener.OnResize(ResizeEvent{
		Session:   s.id,
		Direction: s.direction,
		Delta:     f.Delta,
		Size:      f.Size,
		FlexBasis: f.FlexBasis,
	})
	observability.Drag().OnDragMove(s.id, string(s.direction), f.Delta.Width, f.Delta.Height)
	return f, true
}

// DragEnd moves the engine back to Idle. Hosts call it on pointer up,
// touch end, pointer leave and focus loss alike. The stop event carries the
// delta from the origin to the size measured now. The set axes of a
// controlled size then replace the tracked ones and are written to the host.
// Calling DragEnd while Idle does nothing.
func (e *Engine) DragEnd() {
	s := e.sess
	if s == nil {
		return
	}
	defer func() {
		e.sess = nil
		e.opts.Binder.Unbind()
	}()

	final := e.measure()
	delta := final.Sub(s.origin.Size)
	e.opts.Listener.OnResizeStop(ResizeEvent{
		Session:   s.id,
		Direction: s.direction,
		Delta:     delta,
		Size:      e.size,
		FlexBasis: e.flexBasis,
	})

	if e.opts.Size.IsSet() {
		e.adoptControlled()
		e.writeTracked()
	}

	elapsed := time.Since(s.started)
	observability.Drag().OnDragStop(s.id, string(s.direction), delta.Width, delta.Height, elapsed)
	e.logger.Debug("drag stop", "session", s.id, "direction", s.direction,
		"dw", delta.Width, "dh", delta.Height, "elapsed", elapsed.Round(time.Millisecond))
}

// =============================================================================
// Tracked Size
// =============================================================================

// Size returns the tracked size.
func (e *Engine) Size() unit.Size { return e.size }

// FlexBasis returns the last flex basis, unset outside flex layouts.
func (e *Engine) FlexBasis() unit.Dimension { return e.flexBasis }

// UpdateSize replaces the tracked size. Unset axes become "auto". Outside a
// drag the new size is written to the host.
func (e *Engine) UpdateSize(s unit.Size) {
	e.size = s.OrAuto()
	if e.sess == nil {
		e.writeTracked()
	}
}

// SetControlledSize changes the externally controlled size. An unset size
// makes the engine uncontrolled, and an unset axis leaves that axis to the
// user. Outside a drag a set size takes effect immediately; during a drag it
// takes effect at DragEnd.
func (e *Engine) SetControlledSize(s unit.Size) {
	e.opts.Size = s
	if e.sess == nil && s.IsSet() {
		e.adoptControlled()
		e.writeTracked()
	}
}

// adoptControlled copies the set axes of the controlled size into the
// tracked size.
func (e *Engine) adoptControlled() {
	if c := e.opts.Size.Width; c.IsSet() {
		e.size.Width = c
	}
	if c := e.opts.Size.Height; c.IsSet() {
		e.size.Height = c
	}
}

// PixelSize returns the tracked size resolved to pixels, falling back to
// laid-out size for "auto" axes.
func (e *Engine) PixelSize() geom.Size { return e.measure() }

// =============================================================================
// State
// =============================================================================

// Dragging reports whether a drag is in progress.
func (e *Engine) Dragging() bool { return e.sess != nil }

// Direction returns the active handle.
func (e *Engine) Direction() (geom.Direction, bool) {
	if e.sess == nil {
		return "", false
	}
	return e.sess.direction, true
}

// Session returns the active drag's ID, empty when Idle.
func (e *Engine) Session() string {
	if e.sess == nil {
		return ""
	}
	return e.sess.id
}

// Origin returns the active drag's origin.
func (e *Engine) Origin() (Origin, bool) {
	if e.sess == nil {
		return Origin{}, false
	}
	return e.sess.origin, true
}

// Cursor returns the cursor to show over the whole page: the handle's
// cursor while dragging, "auto" otherwise.
func (e *Engine) Cursor() string {
	if e.sess == nil {
		return "auto"
	}
	return e.sess.cursor
}

// Options returns a copy of the engine's options with defaults applied.
func (e *Engine) Options() Options { return e.opts }

// =============================================================================
// Helpers
// =============================================================================

// measure resolves the tracked size to pixels. Axes that are "auto" fall
// back to the element's laid-out size.
func (e *Engine) measure() geom.Size {
	parent := layout.MeasureParent(e.host)
	vp := e.host.Viewport()
	laid := e.host.Element().Scale(1 / e.opts.Scale).Size()

	w, ok := unit.ToPixels(e.size.Width, parent.Width, vp.Width, vp.Height)
	if !ok {
		w = laid.Width
	}
	h, ok := unit.ToPixels(e.size.Height, parent.Height, vp.Width, vp.Height)
	if !ok {
		h = laid.Height
	}
	return geom.Size{Width: w, Height: h}
}

func (e *Engine) writeTracked() {
	e.host.Apply(geom.BottomRight, e.measure())
}

func (e *Engine) lockFor(origin geom.Size) Lock {
	if !e.opts.LockAspectRatio.Enabled() {
		return Lock{}
	}
	ratio, ok := e.opts.LockAspectRatio.Fixed()
	if !ok {
		ratio = origin.Width / origin.Height
	}
	l := Lock{Ratio: ratio, ExtraWidth: e.opts.ExtraWidth, ExtraHeight: e.opts.ExtraHeight}
	if !l.Active() {
		e.logger.Warn("aspect lock ignored for this drag", "ratio", ratio)
		return Lock{}
	}
	return l
}

func (e *Engine) reject(dir geom.Direction, err error) error {
	observability.Drag().OnDragRejected(string(dir), err)
	e.logger.Warn("drag rejected", "direction", dir, "err", err)
	return err
}

func resolve(d unit.Dimension, reference float64, vp geom.Size) Limit {
	if v, ok := unit.ToPixels(d, reference, vp.Width, vp.Height); ok {
		return LimitOf(v)
	}
	return Limit{}
}

// express re-expresses px in the unit the axis had at drag start. An axis
// that started "auto" stays "auto" while it sits at its origin value and no
// controlled size pins it.
func express(px float64, u unit.Unit, reference float64, vp geom.Size, origin float64, controlled unit.Dimension) unit.Dimension {
	if u == unit.UnitAuto {
		if px == origin && (!controlled.IsSet() || controlled.IsAuto()) {
			return unit.Auto()
		}
		return unit.Px(px)
	}
	return unit.Express(px, u, reference, vp.Width, vp.Height)
}
