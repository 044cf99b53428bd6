package alphablend

import (
	"image/color"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/alphablend/internal/fmath"
)

// Color is a premultiplied RGBA color with channels of type C.
//
// The struct holds exactly the four channels in R, G, B, A order and
// nothing else; the zero-copy batch path relies on that layout.
type Color[C Channel[C]] struct {
	R, G, B, A C
}

// Common instantiations.
type (
	// RGBA8 has 8-bit channels, the layout of image.RGBA pixels.
	RGBA8 = Color[U8]
	// RGBA16 has 16-bit channels, the domain of image/color.RGBA64.
	RGBA16 = Color[U16]
	// RGBAF32 has normalized float32 channels.
	RGBAF32 = Color[F32]
)

// NewColor creates a color from premultiplied channel values.
func NewColor[C Channel[C]](r, g, b, a C) Color[C] {
	return Color[C]{R: r, G: g, B: b, A: a}
}

// Transparent returns the fully transparent color of domain C.
func Transparent[C Channel[C]]() Color[C] {
	var z C
	m := z.FromNormalized(0)
	return Color[C]{R: m, G: m, B: m, A: m}
}

// ColorFromVec4 builds a color from normalized (r, g, b, a) values.
func ColorFromVec4[C Channel[C]](v f32.Vec4) Color[C] {
	var z C
	return Color[C]{
		R: z.FromNormalized(v[0]),
		G: z.FromNormalized(v[1]),
		B: z.FromNormalized(v[2]),
		A: z.FromNormalized(v[3]),
	}
}

// FromColor converts any image/color.Color into domain C. The standard
// library colors are already premultiplied, so no alpha conversion happens.
func FromColor[C Channel[C]](c color.Color) Color[C] {
	r, g, b, a := c.RGBA()
	return ColorFromVec4[C](f32.Vec4{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(b) / 0xffff,
		float32(a) / 0xffff,
	})
}

// Convert re-expresses c in channel domain D.
func Convert[D Channel[D], C Channel[C]](c Color[C]) Color[D] {
	return ColorFromVec4[D](c.Normalized())
}

// Red returns the red channel.
func (c Color[C]) Red() C { return c.R }

// Green returns the green channel.
func (c Color[C]) Green() C { return c.G }

// Blue returns the blue channel.
func (c Color[C]) Blue() C { return c.B }

// Alpha returns the alpha channel.
func (c Color[C]) Alpha() C { return c.A }

// NormalizedAlpha returns alpha in [0, 1].
func (c Color[C]) NormalizedAlpha() float32 { return c.A.Normalized() }

// Normalized returns all four channels in [0, 1].
func (c Color[C]) Normalized() f32.Vec4 {
	return f32.Vec4{c.R.Normalized(), c.G.Normalized(), c.B.Normalized(), c.A.Normalized()}
}

// IsOpaque reports whether alpha is at the domain maximum.
func (c Color[C]) IsOpaque() bool {
	return c.A == c.A.Max()
}

// RGBA implements image/color.Color. Values are premultiplied 16-bit.
func (c Color[C]) RGBA() (r, g, b, a uint32) {
	n := c.Normalized()
	return fmath.Quantize(n[0], 0xffff),
		fmath.Quantize(n[1], 0xffff),
		fmath.Quantize(n[2], 0xffff),
		fmath.Quantize(n[3], 0xffff)
}

// Premultiply treats c as straight (non-premultiplied) alpha and returns the
// premultiplied equivalent.
func (c Color[C]) Premultiply() Color[C] {
	n := c.Normalized()
	a := n[3]
	return ColorFromVec4[C](f32.Vec4{n[0] * a, n[1] * a, n[2] * a, a})
}

// Unpremultiply returns the straight-alpha equivalent of c.
// A zero-alpha color has no recoverable color and yields zero channels.
func (c Color[C]) Unpremultiply() Color[C] {
	n := c.Normalized()
	a := n[3]
	if a == 0 {
		return Transparent[C]()
	}
	return ColorFromVec4[C](f32.Vec4{n[0] / a, n[1] / a, n[2] / a, a})
}
