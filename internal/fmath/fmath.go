// Package fmath provides the scalar float32 primitives shared by every
// blending path.
//
// The same helpers back the element-wise engine and the batch kernels in the
// root package, so both paths round identically. Two backends are available:
// the default uses package math, and the alphablend_softmath build tag
// selects an integer-only implementation for targets without a usable
// floating-point library.
package fmath

// Clamp01 restricts x to [0, 1]. NaN maps to 0.
func Clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Mix computes clamp01(fa*s + fb*d).
//
// Each product is rounded to float32 before the sum so the result does not
// depend on whether the compiler fuses multiply-add on the target.
func Mix(fa, s, fb, d float32) float32 {
	return Clamp01(float32(fa*s) + float32(fb*d))
}

// Quantize maps a normalized value to the integer range [0, max], rounding
// half away from zero. Out-of-range and NaN inputs saturate.
func Quantize(x float32, max uint32) uint32 {
	return uint32(Round(Clamp01(x) * float32(max)))
}
