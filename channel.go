package alphablend

import "github.com/gogpu/alphablend/internal/fmath"

// Channel is the numeric domain of one color channel.
//
// C is the concrete channel type itself, so a type implements Channel[C] by
// declaring methods on its own value type:
//
//	type U8 uint8
//	func (U8) Min() U8 { return 0 }
//	...
//
// Min and Max are the representable bounds. Normalized maps a value into
// [0, 1] and FromNormalized maps back, clamping out-of-range input to
// [Min, Max] instead of failing. Both conversions must be linear and pure.
type Channel[C any] interface {
	comparable
	Min() C
	Max() C
	Normalized() float32
	FromNormalized(x float32) C
}

// U8 is an 8-bit channel in [0, 255].
type U8 uint8

// Min returns 0.
func (U8) Min() U8 { return 0 }

// Max returns 255.
func (U8) Max() U8 { return 255 }

// Normalized returns v/255.
func (v U8) Normalized() float32 { return float32(v) / 255 }

// FromNormalized returns round(x*255), saturating outside [0, 1].
func (U8) FromNormalized(x float32) U8 {
	return U8(fmath.Quantize(x, 255)) // #nosec G115 -- bounded by 255
}

// PlainLane certifies that Color[U8] is four packed bytes.
func (U8) PlainLane() Lane { return LaneU8 }

// U16 is a 16-bit channel in [0, 65535], the domain of image/color.RGBA64.
type U16 uint16

// Min returns 0.
func (U16) Min() U16 { return 0 }

// Max returns 65535.
func (U16) Max() U16 { return 0xffff }

// Normalized returns v/65535.
func (v U16) Normalized() float32 { return float32(v) / 0xffff }

// FromNormalized returns round(x*65535), saturating outside [0, 1].
func (U16) FromNormalized(x float32) U16 {
	return U16(fmath.Quantize(x, 0xffff)) // #nosec G115 -- bounded by 65535
}

// F32 is a floating-point channel in [0, 1].
//
// Stored values outside [0, 1], and NaN, are clamped when they enter a
// blend.
type F32 float32

// Min returns 0.
func (F32) Min() F32 { return 0 }

// Max returns 1.
func (F32) Max() F32 { return 1 }

// Normalized returns v clamped to [0, 1].
func (v F32) Normalized() float32 { return fmath.Clamp01(float32(v)) }

// FromNormalized returns x clamped to [0, 1].
func (F32) FromNormalized(x float32) F32 { return F32(fmath.Clamp01(x)) }

// PlainLane certifies that Color[F32] is four packed float32 values.
func (F32) PlainLane() Lane { return LaneF32 }
