package resize

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/resizable/pkg/errors"
	"github.com/matzehuels/resizable/pkg/geom"
	"github.com/matzehuels/resizable/pkg/unit"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMinSize is the minimum width and height applied when no minimum
	// is configured.
	DefaultMinSize = 10.0

	// DefaultScale is the host's zoom factor.
	DefaultScale = 1.0

	// DefaultResizeRatio maps one pointer pixel to one size pixel.
	DefaultResizeRatio = 1.0

	// DefaultGridStep snaps to whole pixels.
	DefaultGridStep = 1.0
)

// =============================================================================
// Bounds
// =============================================================================

// BoundsMode selects the containment region.
type BoundsMode int

const (
	BoundsNone BoundsMode = iota
	BoundsParent
	BoundsViewport
	BoundsSelector
)

// Bounds is the containment the element may not grow beyond.
type Bounds struct {
	Mode     BoundsMode
	Selector string // only for BoundsSelector
}

// ParseBounds reads "", "none", "parent", "window"/"viewport", or treats
// anything else as a selector.
func ParseBounds(s string) Bounds {
	switch strings.TrimSpace(s) {
	case "", "none":
		return Bounds{}
	case "parent":
		return Bounds{Mode: BoundsParent}
	case "window", "viewport":
		return Bounds{Mode: BoundsViewport}
	}
	return Bounds{Mode: BoundsSelector, Selector: strings.TrimSpace(s)}
}

func (b Bounds) String() string {
	switch b.Mode {
	case BoundsParent:
		return "parent"
	case BoundsViewport:
		return "window"
	case BoundsSelector:
		return b.Selector
	}
	return "none"
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBounds.
func (b *Bounds) UnmarshalText(text []byte) error {
	*b = ParseBounds(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Bounds) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// =============================================================================
// Aspect Lock
// =============================================================================

// AspectLock is either disabled, locked to the ratio measured at drag start,
// or locked to a fixed width/height ratio.
type AspectLock struct {
	enabled bool
	ratio   float64
}

// LockToOrigin locks the ratio to the element's size at drag start.
func LockToOrigin() AspectLock { return AspectLock{enabled: true} }

// LockRatio locks width/height to r.
func LockRatio(r float64) AspectLock { return AspectLock{enabled: true, ratio: r} }

// Enabled reports whether the lock is on.
func (a AspectLock) Enabled() bool { return a.enabled }

// Fixed returns the fixed ratio, false when the ratio comes from the origin.
func (a AspectLock) Fixed() (float64, bool) {
	return a.ratio, a.enabled && a.ratio != 0
}

func (a AspectLock) String() string {
	if r, ok := a.Fixed(); ok {
		return fmt.Sprintf("%g", r)
	}
	return fmt.Sprintf("%t", a.enabled)
}

// UnmarshalTOML accepts a boolean or a number.
func (a *AspectLock) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case bool:
		*a = AspectLock{enabled: t}
	case int64:
		*a = LockRatio(float64(t))
	case float64:
		*a = LockRatio(t)
	default:
		return fmt.Errorf("lock_aspect_ratio: unsupported value %v (%T)", v, v)
	}
	return nil
}

// UnmarshalJSON accepts a boolean or a number.
func (a *AspectLock) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*a = AspectLock{enabled: b}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("lock_aspect_ratio: %w", err)
	}
	*a = LockRatio(f)
	return nil
}

// MarshalJSON encodes the lock the way UnmarshalJSON reads it.
func (a AspectLock) MarshalJSON() ([]byte, error) {
	if r, ok := a.Fixed(); ok {
		return json.Marshal(r)
	}
	return json.Marshal(a.enabled)
}

// =============================================================================
// Snap
// =============================================================================

// Snap lists explicit snap coordinates per axis.
type Snap struct {
	X []float64 `toml:"x" json:"x,omitempty"`
	Y []float64 `toml:"y" json:"y,omitempty"`
}

// =============================================================================
// Options
// =============================================================================

// Options configures an Engine. The zero value is usable after SetDefaults.
type Options struct {
	// Enable turns individual handles off with false. Missing entries stay
	// enabled, so { top = false } disables only the top handle.
	Enable geom.Enable `toml:"enable" json:"enable,omitempty"`

	// Grid is the quantization step per axis.
	Grid geom.Pair `toml:"grid" json:"grid"`

	// Snap lists explicit snap points per axis.
	Snap Snap `toml:"snap" json:"snap"`

	// SnapGap is the snapping tolerance. Zero always snaps.
	SnapGap float64 `toml:"snap_gap" json:"snap_gap,omitempty"`

	// Bounds is the containment region.
	Bounds Bounds `toml:"bounds" json:"bounds"`

	// BoundsByDirection measures leading-edge drags (left, top) from the
	// element's trailing edge. Nil means true.
	BoundsByDirection *bool `toml:"bounds_by_direction" json:"bounds_by_direction,omitempty"`

	// Size is the externally controlled size. When set it wins at drag end.
	Size unit.Size `toml:"size" json:"size"`

	// DefaultSize seeds the tracked size when Size is unset.
	DefaultSize unit.Size `toml:"default_size" json:"default_size"`

	MinWidth  unit.Dimension `toml:"min_width" json:"min_width"`
	MinHeight unit.Dimension `toml:"min_height" json:"min_height"`
	MaxWidth  unit.Dimension `toml:"max_width" json:"max_width"`
	MaxHeight unit.Dimension `toml:"max_height" json:"max_height"`

	// LockAspectRatio couples width and height.
	LockAspectRatio AspectLock `toml:"lock_aspect_ratio" json:"lock_aspect_ratio"`

	// ExtraWidth and ExtraHeight are fixed margins excluded from the ratio.
	ExtraWidth  float64 `toml:"extra_width" json:"extra_width,omitempty"`
	ExtraHeight float64 `toml:"extra_height" json:"extra_height,omitempty"`

	// Scale is the host's zoom factor; pointer deltas are divided by it.
	Scale float64 `toml:"scale" json:"scale,omitempty"`

	// ResizeRatio multiplies pointer deltas per axis.
	ResizeRatio geom.Pair `toml:"resize_ratio" json:"resize_ratio"`

	// Runtime options (not serialized)
	Logger   *log.Logger `toml:"-" json:"-"`
	Listener Listener    `toml:"-" json:"-"`
	Binder   Binder      `toml:"-" json:"-"`
}

// Bool returns a pointer to v, for BoundsByDirection.
func Bool(v bool) *bool { return &v }

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills zero values with their defaults. It is idempotent.
func (o *Options) SetDefaults() {
	if o.Grid.X == 0 {
		o.Grid.X = DefaultGridStep
	}
	if o.Grid.Y == 0 {
		o.Grid.Y = DefaultGridStep
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.ResizeRatio.X == 0 {
		o.ResizeRatio.X = DefaultResizeRatio
	}
	if o.ResizeRatio.Y == 0 {
		o.ResizeRatio.Y = DefaultResizeRatio
	}
	if o.BoundsByDirection == nil {
		o.BoundsByDirection = Bool(true)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Listener == nil {
		o.Listener = Callbacks{}
	}
	if o.Binder == nil {
		o.Binder = nopBinder{}
	}
}

// Validate checks option values. Call SetDefaults first.
func (o *Options) Validate() error {
	if !positive(o.Scale) {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be a positive number, got %v", o.Scale)
	}
	if !positive(o.Grid.X) || !positive(o.Grid.Y) {
		return errors.New(errors.ErrCodeInvalidConfig, "grid steps must be positive, got [%v, %v]", o.Grid.X, o.Grid.Y)
	}
	if !geom.Finite(o.ResizeRatio.X) || !geom.Finite(o.ResizeRatio.Y) || o.ResizeRatio.X == 0 || o.ResizeRatio.Y == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "resize ratio must be finite and non-zero, got [%v, %v]", o.ResizeRatio.X, o.ResizeRatio.Y)
	}
	if o.SnapGap < 0 || !geom.Finite(o.SnapGap) {
		return errors.New(errors.ErrCodeInvalidConfig, "snap gap must be >= 0, got %v", o.SnapGap)
	}
	if !geom.Finite(o.ExtraWidth) || !geom.Finite(o.ExtraHeight) {
		return errors.New(errors.ErrCodeInvalidConfig, "aspect extras must be finite")
	}
	if r, ok := o.LockAspectRatio.Fixed(); ok && !positive(r) {
		return errors.New(errors.ErrCodeInvalidConfig, "aspect ratio must be positive, got %v", r)
	}
	if o.Bounds.Mode == BoundsSelector {
		if err := errors.ValidateSelector(o.Bounds.Selector); err != nil {
			return err
		}
	}
	for d := range o.Enable {
		if !d.Valid() {
			return errors.New(errors.ErrCodeInvalidDirection, "enable map has unknown direction %q", d)
		}
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

func (o *Options) boundsByDirection() bool {
	return o.BoundsByDirection == nil || *o.BoundsByDirection
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }
