package alphablend

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f32"
)

var _ color.Color = RGBA8{}

func TestNewColorAccessors(t *testing.T) {
	c := NewColor[U8](10, 20, 30, 40)
	if c.Red() != 10 || c.Green() != 20 || c.Blue() != 30 || c.Alpha() != 40 {
		t.Errorf("accessors = %d %d %d %d, want 10 20 30 40", c.Red(), c.Green(), c.Blue(), c.Alpha())
	}
	if got := c.NormalizedAlpha(); got != float32(40)/255 {
		t.Errorf("NormalizedAlpha() = %v", got)
	}
}

func TestTransparent(t *testing.T) {
	if got := Transparent[U8](); got != (RGBA8{}) {
		t.Errorf("Transparent[U8]() = %+v", got)
	}
	if got := Transparent[F32](); got != (RGBAF32{}) {
		t.Errorf("Transparent[F32]() = %+v", got)
	}
}

func TestConvert(t *testing.T) {
	c8 := RGBA8{R: 255, G: 0, B: 51, A: 255}
	cf := Convert[F32](c8)
	if diff := cmp.Diff(RGBAF32{R: 1, G: 0, B: 0.2, A: 1}, cf); diff != "" {
		t.Errorf("Convert[F32] mismatch (-want +got):\n%s", diff)
	}
	if back := Convert[U8](cf); back != c8 {
		t.Errorf("Convert[U8] = %+v, want %+v", back, c8)
	}
	c16 := Convert[U16](c8)
	if c16.R != 0xffff || c16.B != 51*257 {
		t.Errorf("Convert[U16] = %+v", c16)
	}
}

func TestNormalizedVec4(t *testing.T) {
	c := RGBAF32{R: 0.25, G: 2, B: -1, A: 0.5}
	want := f32.Vec4{0.25, 1, 0, 0.5}
	if got := c.Normalized(); got != want {
		t.Errorf("Normalized() = %v, want %v", got, want)
	}
	if got := ColorFromVec4[F32](want); got != (RGBAF32{R: 0.25, G: 1, B: 0, A: 0.5}) {
		t.Errorf("ColorFromVec4 = %+v", got)
	}
}

func TestIsOpaque(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA8
		want bool
	}{
		{"opaque", RGBA8{A: 255}, true},
		{"translucent", RGBA8{A: 254}, false},
		{"transparent", RGBA8{}, false},
	}
	for _, tt := range tests {
		if got := tt.c.IsOpaque(); got != tt.want {
			t.Errorf("%s: IsOpaque() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGBA8{R: 255, G: 128, B: 0, A: 255}.RGBA()
	if r != 0xffff || g != 128*257 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %d %d %d %d", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA8
	}{
		{"rgba", color.RGBA{R: 0x80, G: 0, B: 0, A: 0x80}, RGBA8{R: 0x80, A: 0x80}},
		{"nrgba is premultiplied", color.NRGBA{R: 255, G: 0, B: 0, A: 128}, RGBA8{R: 128, A: 128}},
		{"gray", color.Gray{Y: 51}, RGBA8{R: 51, G: 51, B: 51, A: 255}},
		{"self", RGBA8{R: 1, G: 2, B: 3, A: 4}, RGBA8{R: 1, G: 2, B: 3, A: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor[U8](tt.in); got != tt.want {
				t.Errorf("FromColor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorModelConvert(t *testing.T) {
	// color.RGBAModel accepts any color.Color, including ours.
	got := color.RGBAModel.Convert(RGBA8{R: 10, G: 20, B: 30, A: 40}).(color.RGBA)
	if want := (color.RGBA{R: 10, G: 20, B: 30, A: 40}); got != want {
		t.Errorf("RGBAModel.Convert = %v, want %v", got, want)
	}
}

func TestPremultiply(t *testing.T) {
	straight := RGBAF32{R: 1, G: 0.5, B: 0, A: 0.5}
	pre := straight.Premultiply()
	if want := (RGBAF32{R: 0.5, G: 0.25, B: 0, A: 0.5}); pre != want {
		t.Errorf("Premultiply() = %+v, want %+v", pre, want)
	}
	if back := pre.Unpremultiply(); back != straight {
		t.Errorf("Unpremultiply() = %+v, want %+v", back, straight)
	}
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	c := RGBAF32{R: 0.3, G: 0.3, B: 0.3, A: 0}
	if got := c.Unpremultiply(); got != (RGBAF32{}) {
		t.Errorf("Unpremultiply() = %+v, want transparent", got)
	}
	if got := (RGBA8{R: 9, A: 0}).Unpremultiply(); got != (RGBA8{}) {
		t.Errorf("Unpremultiply() = %+v, want transparent", got)
	}
}
