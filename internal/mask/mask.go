package mask

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// ErrWeight reports a mask weight outside [0, 1] or NaN.
var ErrWeight = errors.New("mask weight out of range")

// Mask is a width x height grid of weights in [0, 1], stored row-major.
type Mask struct {
	width   int
	height  int
	weights []float32
}

// New returns an all-zero mask.
func New(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask has empty geometry %dx%d", pixbuf.ErrShape, width, height)
	}
	return &Mask{width: width, height: height, weights: make([]float32, width*height)}, nil
}

// Full returns a mask with every weight set to v.
func Full(width, height int, v float32) (*Mask, error) {
	if err := checkWeight(v); err != nil {
		return nil, err
	}
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	for i := range m.weights {
		m.weights[i] = v
	}
	return m, nil
}

// FromWeights copies row-major weights (index y*width+x) into a new mask.
func FromWeights(width, height int, weights []float32) (*Mask, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(weights) != width*height {
		return nil, fmt.Errorf("%w: mask of %dx%d needs %d weights, got %d",
			pixbuf.ErrShape, width, height, width*height, len(weights))
	}
	for i, v := range weights {
		if err := checkWeight(v); err != nil {
			return nil, fmt.Errorf("weight %d: %w", i, err)
		}
	}
	copy(m.weights, weights)
	return m, nil
}

func checkWeight(v float32) error {
	if v != v || v < 0 || v > 1 {
		return fmt.Errorf("%w: %v", ErrWeight, v)
	}
	return nil
}

// Width returns the X extent.
func (m *Mask) Width() int { return m.width }

// Height returns the Y extent.
func (m *Mask) Height() int { return m.height }

// Dims implements pixbuf.Sizer.
func (m *Mask) Dims() (int, int) { return m.width, m.height }

// At returns the weight at (x, y).
func (m *Mask) At(x, y int) float32 { return m.weights[y*m.width+x] }

// Set stores v at (x, y).
func (m *Mask) Set(x, y int, v float32) error {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return fmt.Errorf("mask coordinates (%d,%d) outside %dx%d", x, y, m.width, m.height)
	}
	if err := checkWeight(v); err != nil {
		return err
	}
	m.weights[y*m.width+x] = v
	return nil
}

// Weights returns a row-major copy of the weights.
func (m *Mask) Weights() []float32 {
	return append([]float32(nil), m.weights...)
}

// Mean returns the average weight, i.e. the fraction of full effect applied
// over the whole image.
func (m *Mask) Mean() float64 {
	var sum float64
	for _, v := range m.weights {
		sum += float64(v)
	}
	return sum / float64(len(m.weights))
}

// Invert returns a new mask with every weight w replaced by 1-w.
func (m *Mask) Invert() *Mask {
	out := &Mask{width: m.width, height: m.height, weights: make([]float32, len(m.weights))}
	for i, v := range m.weights {
		out.weights[i] = 1 - v
	}
	return out
}

// Validate reports an ErrShape for masks not built by this package, such as
// the zero value.
func (m *Mask) Validate() error {
	if m.width <= 0 || m.height <= 0 || len(m.weights) != m.width*m.height {
		return fmt.Errorf("%w: mask is not initialized", pixbuf.ErrShape)
	}
	return nil
}

// clamp01 guards builder output against float rounding just past the ends.
func clamp01(v float64) float32 {
	return float32(math.Min(1, math.Max(0, v)))
}
