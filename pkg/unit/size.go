package unit

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Size pairs a width and a height Dimension. It is used for the controlled
// size, the default size and the size tracked by the engine.
type Size struct {
	Width  Dimension `json:"width" toml:"width"`
	Height Dimension `json:"height" toml:"height"`
}

// IsSet reports whether either axis is set.
func (s Size) IsSet() bool { return s.Width.IsSet() || s.Height.IsSet() }

// OrAuto replaces unset axes with "auto".
func (s Size) OrAuto() Size {
	return Size{Width: s.Width.Or(Auto()), Height: s.Height.Or(Auto())}
}

func (s Size) String() string {
	w, h := s.Width.String(), s.Height.String()
	if w == "" {
		w = "-"
	}
	if h == "" {
		h = "-"
	}
	return w + " x " + h
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (d *Dimension) UnmarshalText(text []byte) error {
	*d = Parse(string(text))
	return nil
}

// MarshalJSON encodes pixels as numbers and everything else as strings.
// Unset dimensions encode as null.
func (d Dimension) MarshalJSON() ([]byte, error) {
	switch d.Unit {
	case UnitNone:
		return []byte("null"), nil
	case UnitPx:
		return []byte(strconv.FormatFloat(d.Value, 'f', -1, 64)), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a number (pixels), a string, or null.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Dimension{}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*d = Px(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dimension: %w", err)
	}
	*d = Parse(s)
	return nil
}

// UnmarshalTOML accepts integers, floats (pixels) and strings.
func (d *Dimension) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*d = Px(float64(t))
	case float64:
		*d = Px(t)
	case string:
		*d = Parse(t)
	default:
		return fmt.Errorf("dimension: unsupported value %v (%T)", v, v)
	}
	return nil
}
