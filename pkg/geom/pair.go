package geom

import (
	"encoding/json"
	"fmt"
)

// Pair holds one value per axis: grid steps, resize ratios.
type Pair struct {
	X, Y float64
}

// Uniform returns a pair with the same value on both axes.
func Uniform(v float64) Pair { return Pair{X: v, Y: v} }

// UnmarshalTOML accepts either a single number or a two-element array.
func (p *Pair) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case int64:
		*p = Uniform(float64(t))
	case float64:
		*p = Uniform(t)
	case []any:
		if len(t) != 2 {
			return fmt.Errorf("pair needs 2 values, got %d", len(t))
		}
		x, err := number(t[0])
		if err != nil {
			return err
		}
		y, err := number(t[1])
		if err != nil {
			return err
		}
		*p = Pair{X: x, Y: y}
	default:
		return fmt.Errorf("pair: unsupported value %v (%T)", v, v)
	}
	return nil
}

// UnmarshalJSON mirrors UnmarshalTOML for JSON input.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Uniform(f)
		return nil
	}
	var arr []float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return fmt.Errorf("pair: %w", err)
	}
	if len(arr) != 2 {
		return fmt.Errorf("pair needs 2 values, got %d", len(arr))
	}
	*p = Pair{X: arr[0], Y: arr[1]}
	return nil
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

func number(v any) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	}
	return 0, fmt.Errorf("expected number, got %v (%T)", v, v)
}
