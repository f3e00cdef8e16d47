package plot

import "fmt"

// ToneField is a width x height grid of ink intensity, normalized to [0,1].
// Higher values mean more ink; every strategy tests tone >= threshold.
// The grid is read-only once constructed.
type ToneField struct {
	W, H int
	v    []float64
}

// NewToneField wraps a row-major intensity grid. The grid must be non-empty
// and contain exactly w*h values.
func NewToneField(w, h int, v []float64) (*ToneField, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidToneField, w, h)
	}
	if len(v) != w*h {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrInvalidToneField, len(v), w, h)
	}
	return &ToneField{W: w, H: h, v: v}, nil
}

// At returns the intensity at pixel (x, y). Row 0 is the image top.
func (t *ToneField) At(x, y int) float64 {
	return t.v[y*t.W+x]
}

// Ink reports whether pixel (x, y) passes the ink threshold.
func (t *ToneField) Ink(x, y int, threshold float64) bool {
	return t.At(x, y) >= threshold
}
