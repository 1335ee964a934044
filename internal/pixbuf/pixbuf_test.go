package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// testColor returns a deterministic, position-dependent color.
func testColor(x, y int) (uint8, uint8, uint8) {
	return uint8(x*37 + y*11), uint8(x*5 + y*71), uint8(x*13 + y*3)
}

func fill(b Buffer) {
	w, h := b.Dims()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl := testColor(x, y)
			b.SetRGB(x, y, r, g, bl)
		}
	}
}

func TestPacked3_Indexing(t *testing.T) {
	p := NewPacked3(3, 2)
	p.SetRGB(1, 0, 10, 20, 30)
	p.SetRGB(0, 1, 40, 50, 60)

	// [x][y][c]: (1,0) is the third triple, (0,1) the second.
	if got := p.Pix[(1*2+0)*3 : (1*2+0)*3+3]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("(1,0) stored as %v, want [10 20 30]", got)
	}
	if got := p.Pix[3:6]; got[0] != 40 || got[1] != 50 || got[2] != 60 {
		t.Errorf("(0,1) stored as %v, want [40 50 60]", got)
	}
	if r, g, b := p.RGBAt(1, 0); r != 10 || g != 20 || b != 30 {
		t.Errorf("RGBAt(1,0) = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestFlat_Indexing(t *testing.T) {
	f := NewFlat(3, 2)
	f.SetRGB(1, 0, 10, 20, 30)
	f.SetRGB(0, 1, 40, 50, 60)

	if got := f.Pix[3:6]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("(1,0) stored as %v, want [10 20 30]", got)
	}
	if got := f.Pix[9:12]; got[0] != 40 || got[1] != 50 || got[2] != 60 {
		t.Errorf("(0,1) stored as %v, want [40 50 60]", got)
	}
}

func TestLayouts_AgreeOnCoordinates(t *testing.T) {
	const w, h = 7, 5
	layouts := map[string]Buffer{
		"packed3":       NewPacked3(w, h),
		"packed3+alpha": NewPacked3Alpha(w, h),
		"flat":          NewFlat(w, h),
		"rgb24 surface": NewRGB24Surface(w, h),
		"nrgba surface": NewNRGBASurface(w, h),
	}
	for name, b := range layouts {
		t.Run(name, func(t *testing.T) {
			fill(b)
			gw, gh := b.Dims()
			if gw != w || gh != h {
				t.Fatalf("Dims = %dx%d, want %dx%d", gw, gh, w, h)
			}
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					r, g, bl := b.RGBAt(x, y)
					wr, wg, wb := testColor(x, y)
					if r != wr || g != wg || bl != wb {
						t.Fatalf("(%d,%d) = (%d,%d,%d), want (%d,%d,%d)", x, y, r, g, bl, wr, wg, wb)
					}
				}
			}
		})
	}
}

func TestValidate_Geometry(t *testing.T) {
	tests := []struct {
		name string
		v    interface{ Validate() error }
		ok   bool
	}{
		{"packed3 ok", NewPacked3(4, 3), true},
		{"packed3 short", &Packed3{Pix: make([]uint8, 35), Width: 4, Height: 3}, false},
		{"packed3 long", &Packed3{Pix: make([]uint8, 37), Width: 4, Height: 3}, false},
		{"packed3 empty", &Packed3{Width: 0, Height: 3}, false},
		{"packed3 nil", (*Packed3)(nil), false},
		{"alpha ok", NewAlphaPlane(4, 3), true},
		{"alpha short", &AlphaPlane{Pix: make([]uint8, 11), Width: 4, Height: 3}, false},
		{"flat ok", NewFlat(4, 3), true},
		{"flat swapped geometry still same length", &Flat{Pix: make([]uint8, 36), Width: 3, Height: 4}, true},
		{"flat wrong geometry", &Flat{Pix: make([]uint8, 36), Width: 4, Height: 4}, false},
		{"flat negative", &Flat{Width: -1, Height: -1}, false},
		{"rgba ok", NewPacked3Alpha(4, 3), true},
		{"rgba mismatched", &Packed3Alpha{RGB: NewPacked3(4, 3), Alpha: NewAlphaPlane(3, 4)}, false},
		{"rgba missing alpha", &Packed3Alpha{RGB: NewPacked3(4, 3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrShape) {
				t.Errorf("Validate() = %v, want ErrShape", err)
			}
		})
	}
}

func TestNewSurface_Types(t *testing.T) {
	r := image.Rect(0, 0, 4, 4)
	tests := []struct {
		name      string
		img       image.Image
		ok        bool
		wantAlpha bool
	}{
		{"rgb24", NewRGB24(r), true, false},
		{"nrgba", image.NewNRGBA(r), true, true},
		{"premultiplied rgba", image.NewRGBA(r), false, false},
		{"gray", image.NewGray(r), false, false},
		{"nrgba64", image.NewNRGBA64(r), false, false},
		{"empty nrgba", image.NewNRGBA(image.Rect(0, 0, 0, 4)), false, false},
		{"nil", nil, false, false},
		{"typed nil", (*image.NRGBA)(nil), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.img)
			if !tt.ok {
				if !errors.Is(err, ErrShape) {
					t.Errorf("NewSurface() error = %v, want ErrShape", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSurface() error = %v", err)
			}
			if s.HasAlpha() != tt.wantAlpha {
				t.Errorf("HasAlpha() = %v, want %v", s.HasAlpha(), tt.wantAlpha)
			}
			if _, ok := AlphaOf(s); ok != tt.wantAlpha {
				t.Errorf("AlphaOf ok = %v, want %v", ok, tt.wantAlpha)
			}
		})
	}
}

func TestSurface_SubImage(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 6, 6))
	sub := full.SubImage(image.Rect(2, 3, 5, 6)).(*image.NRGBA)

	s, err := NewSurface(sub)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	if w, h := s.Dims(); w != 3 || h != 3 {
		t.Fatalf("Dims = %dx%d, want 3x3", w, h)
	}
	s.SetRGB(0, 0, 1, 2, 3)
	s.SetAlpha(0, 0, 4)

	if got := full.NRGBAAt(2, 3); got != (color.NRGBA{1, 2, 3, 4}) {
		t.Errorf("parent pixel (2,3) = %v, want {1 2 3 4}", got)
	}
}

func TestSurface_RGB24AlphaIsOpaque(t *testing.T) {
	s := NewRGB24Surface(2, 2)
	s.SetAlpha(0, 0, 7)
	if a := s.AlphaAt(0, 0); a != 0xff {
		t.Errorf("AlphaAt on 24-bit surface = %d, want 255", a)
	}
}

func TestAlphaOf(t *testing.T) {
	if _, ok := AlphaOf(NewPacked3(2, 2)); ok {
		t.Error("Packed3 should have no alpha")
	}
	if _, ok := AlphaOf(NewFlat(2, 2)); ok {
		t.Error("Flat should have no alpha")
	}
	a, ok := AlphaOf(NewPacked3Alpha(2, 2))
	if !ok || a == nil {
		t.Error("Packed3Alpha should expose alpha")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	p := NewPacked3Alpha(3, 3)
	fill(p)
	p.SetAlpha(1, 1, 200)

	c := p.Clone()
	c.SetRGB(1, 1, 0, 0, 0)
	c.SetAlpha(1, 1, 0)

	wr, wg, wb := testColor(1, 1)
	if r, g, b := p.RGBAt(1, 1); r != wr || g != wg || b != wb {
		t.Error("Clone shares RGB memory with original")
	}
	if p.AlphaAt(1, 1) != 200 {
		t.Error("Clone shares alpha memory with original")
	}
}

func TestToRGB24(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(11, 11, color.NRGBA{200, 100, 50, 255})

	out := ToRGB24(src)
	if out.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds = %v, want (0,0)-(3,2)", out.Bounds())
	}
	if got := out.RGBAt(1, 1); got != (RGB{200, 100, 50}) {
		t.Errorf("RGBAt(1,1) = %v, want {200 100 50}", got)
	}
	if got := out.RGBAt(5, 5); got != (RGB{}) {
		t.Errorf("out of bounds RGBAt = %v, want zero", got)
	}
}

func TestRGB24_ImageInterface(t *testing.T) {
	img := NewRGB24(image.Rect(0, 0, 2, 2))
	img.Set(1, 0, color.NRGBA{10, 20, 30, 255})

	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 || a != 0xffff {
		t.Errorf("At(1,0).RGBA() = (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a)
	}
	if !img.Opaque() {
		t.Error("RGB24 should report opaque")
	}
	if _, ok := img.ColorModel().Convert(color.White).(RGB); !ok {
		t.Error("ColorModel should convert to RGB")
	}
}

func TestSameDims(t *testing.T) {
	if err := SameDims(NewPacked3(2, 3), NewAlphaPlane(2, 3)); err != nil {
		t.Errorf("SameDims equal sizes = %v", err)
	}
	if err := SameDims(NewPacked3(2, 3), NewAlphaPlane(3, 2)); !errors.Is(err, ErrShape) {
		t.Errorf("SameDims transposed = %v, want ErrShape", err)
	}
}

func TestRGB24_SetUnpremultiplies(t *testing.T) {
	img := NewRGB24(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 128})

	if got := img.RGBAt(0, 0); got != (RGB{255, 0, 0}) {
		t.Errorf("RGBAt(0,0) = %+v, want {255 0 0}", got)
	}

	// Premultiplied input converts back to straight color.
	img.Set(0, 0, color.RGBA{64, 0, 0, 128})
	if got := img.RGBAt(0, 0); got.R < 126 || got.R > 129 {
		t.Errorf("RGBAt(0,0).R = %d, want about 127", got.R)
	}
}

func TestSurface_Validate(t *testing.T) {
	var nilSurface *Surface
	if err := nilSurface.Validate(); !errors.Is(err, ErrShape) {
		t.Errorf("nil Validate() = %v, want ErrShape", err)
	}
	for _, s := range []*Surface{NewRGB24Surface(3, 2), NewNRGBASurface(3, 2)} {
		if err := s.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	}
}
