package unit

import (
	"math"
	"strconv"
	"strings"
)

// Unit is the suffix a Dimension is expressed in.
type Unit uint8

const (
	// UnitNone marks an unset dimension. It is the zero value.
	UnitNone Unit = iota
	UnitPx
	UnitPercent
	UnitVW
	UnitVH
	UnitVMin
	UnitVMax
	// UnitAuto lets the host size the element. Arithmetic is undefined on it.
	UnitAuto
)

var unitSuffixes = map[Unit]string{
	UnitPx:      "px",
	UnitPercent: "%",
	UnitVW:      "vw",
	UnitVH:      "vh",
	UnitVMin:    "vmin",
	UnitVMax:    "vmax",
}

// suffixOrder is checked longest first so "vmin" is not read as "vm"+"in".
var suffixOrder = []Unit{UnitVMin, UnitVMax, UnitPx, UnitVW, UnitVH, UnitPercent}

func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitAuto:
		return "auto"
	}
	return unitSuffixes[u]
}

// Relative reports whether u depends on a reference length.
func (u Unit) Relative() bool {
	return u == UnitPercent || u == UnitVW || u == UnitVH || u == UnitVMin || u == UnitVMax
}

// Dimension is a size value: pixels, a unit-tagged magnitude, "auto", or unset.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel dimension.
func Px(v float64) Dimension { return Dimension{Value: v, Unit: UnitPx} }

// Percent returns a dimension relative to the parent's content box.
func Percent(v float64) Dimension { return Dimension{Value: v, Unit: UnitPercent} }

// VW returns a dimension relative to the viewport width.
func VW(v float64) Dimension { return Dimension{Value: v, Unit: UnitVW} }

// VH returns a dimension relative to the viewport height.
func VH(v float64) Dimension { return Dimension{Value: v, Unit: UnitVH} }

// VMin returns a dimension relative to the smaller viewport side.
func VMin(v float64) Dimension { return Dimension{Value: v, Unit: UnitVMin} }

// VMax returns a dimension relative to the larger viewport side.
func VMax(v float64) Dimension { return Dimension{Value: v, Unit: UnitVMax} }

// Auto returns the "auto" sentinel.
func Auto() Dimension { return Dimension{Unit: UnitAuto} }

// IsSet reports whether d carries any value, "auto" included.
func (d Dimension) IsSet() bool { return d.Unit != UnitNone }

// IsAuto reports whether d is the "auto" sentinel.
func (d Dimension) IsAuto() bool { return d.Unit == UnitAuto }

// Or returns d when set, otherwise def.
func (d Dimension) Or(def Dimension) Dimension {
	if d.IsSet() {
		return d
	}
	return def
}

// String renders d the way it would appear in a style declaration.
// Unset dimensions render as the empty string.
func (d Dimension) String() string {
	switch d.Unit {
	case UnitNone:
		return ""
	case UnitAuto:
		return "auto"
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + unitSuffixes[d.Unit]
}

// Parse classifies raw by its trailing suffix. Empty input yields an unset
// dimension; "auto" yields the sentinel; numbers without a known suffix are
// pixels. Malformed numbers are not reported: the longest numeric prefix is
// used, and no prefix at all reads as 0px.
func Parse(raw string) Dimension {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Dimension{}
	}
	if strings.EqualFold(s, "auto") {
		return Auto()
	}
	lower := strings.ToLower(s)
	for _, u := range suffixOrder {
		suffix := unitSuffixes[u]
		if strings.HasSuffix(lower, suffix) {
			return Dimension{Value: leadingFloat(s[:len(s)-len(suffix)]), Unit: u}
		}
	}
	return Px(leadingFloat(s))
}

// leadingFloat parses the longest prefix of s that is a valid float.
func leadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	for i := len(s) - 1; i > 0; i-- {
		if v, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return v
		}
	}
	return 0
}

// ToPixels resolves d to absolute pixels. Percentages resolve against
// reference; viewport units against the viewport sides. The second result is
// false for unset and "auto" dimensions: callers treat that as unbounded for
// a maximum and as the intrinsic size for a current value.
func ToPixels(d Dimension, reference, viewportWidth, viewportHeight float64) (float64, bool) {
	switch d.Unit {
	case UnitPx:
		return d.Value, true
	case UnitPercent:
		return reference * d.Value / 100, true
	case UnitVW:
		return viewportWidth * d.Value / 100, true
	case UnitVH:
		return viewportHeight * d.Value / 100, true
	case UnitVMin:
		return math.Min(viewportWidth, viewportHeight) * d.Value / 100, true
	case UnitVMax:
		return math.Max(viewportWidth, viewportHeight) * d.Value / 100, true
	}
	return 0, false
}

// Express re-expresses px in unit u, the inverse of ToPixels. A zero
// reference length leaves the value in pixels rather than dividing by zero.
// UnitNone and UnitAuto pass through as plain pixels.
func Express(px float64, u Unit, reference, viewportWidth, viewportHeight float64) Dimension {
	var base float64
	switch u {
	case UnitPercent:
		base = reference
	case UnitVW:
		base = viewportWidth
	case UnitVH:
		base = viewportHeight
	case UnitVMin:
		base = math.Min(viewportWidth, viewportHeight)
	case UnitVMax:
		base = math.Max(viewportWidth, viewportHeight)
	default:
		return Px(px)
	}
	if base == 0 {
		return Px(px)
	}
	return Dimension{Value: px * 100 / base, Unit: u}
}
