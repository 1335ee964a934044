package saturation

import (
	"errors"
	"fmt"
	"image"
	"math"
	"reflect"

	"github.com/ironsheep/saturation-mcp/internal/mask"
	"github.com/ironsheep/saturation-mcp/internal/pixbuf"
)

// ErrFactorRange reports a saturation factor outside [-1, 1] or NaN.
var ErrFactorRange = errors.New("saturation factor out of range [-1, 1]")

type validator interface {
	pixbuf.Sizer
	Validate() error
}

func checkFactor(factor float64) error {
	if math.IsNaN(factor) || factor < MinFactor || factor > MaxFactor {
		return fmt.Errorf("%w: %v", ErrFactorRange, factor)
	}
	return nil
}

// checkBuffer rejects nil buffers, including typed nil pointers, and runs
// Validate when the layout has one.
func checkBuffer(role string, b pixbuf.Sizer) error {
	if b == nil {
		return fmt.Errorf("%w: nil %s buffer", pixbuf.ErrShape, role)
	}
	if v, ok := b.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%s: %w", role, err)
		}
		return nil
	}
	if rv := reflect.ValueOf(b); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return fmt.Errorf("%w: nil %s buffer of type %T", pixbuf.ErrShape, role, b)
	}
	return nil
}

func checkMask(m *mask.Mask, img pixbuf.Sizer) error {
	if m == nil {
		return nil
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if err := pixbuf.SameDims(img, m); err != nil {
		return fmt.Errorf("image and mask: %w", err)
	}
	return nil
}

// prepare runs every check an array or buffer entry point needs, in order:
// factor, buffer structure, mask.
func prepare(buf validator, factor float64, m *mask.Mask) error {
	if err := checkFactor(factor); err != nil {
		return err
	}
	if err := buf.Validate(); err != nil {
		return err
	}
	return checkMask(m, buf)
}

// prepareSurface is prepare for surface entry points. needAlpha rejects
// surfaces without an alpha channel.
func prepareSurface(img image.Image, factor float64, m *mask.Mask, needAlpha bool) (*pixbuf.Surface, error) {
	if err := checkFactor(factor); err != nil {
		return nil, err
	}
	s, err := pixbuf.NewSurface(img)
	if err != nil {
		return nil, err
	}
	if needAlpha && !s.HasAlpha() {
		return nil, fmt.Errorf("%w: 32-bit transform needs an alpha channel, got %T", pixbuf.ErrShape, img)
	}
	if err := checkMask(m, s); err != nil {
		return nil, err
	}
	return s, nil
}
