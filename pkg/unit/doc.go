// Package unit parses and resolves CSS-like size values.
//
// A Dimension is a magnitude tagged with one of px, %, vw, vh, vmin, vmax,
// the "auto" sentinel, or nothing at all (unset). Parsing is lenient: a
// number without a recognized suffix is read as pixels and malformed input
// is never reported, so callers are expected to pass values that were
// validated upstream.
//
// Resolution goes both ways:
//
//	px, ok := unit.ToPixels(unit.Percent(50), parentWidth, vw, vh) // 50% -> pixels
//	d := unit.Express(px, unit.UnitPercent, parentWidth, vw, vh)    // pixels -> 50%
//
// Percentages resolve against a caller-supplied reference length (the
// parent's content box along the same axis); viewport units resolve against
// the viewport sides.
package unit
