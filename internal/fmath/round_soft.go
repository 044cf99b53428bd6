//go:build alphablend_softmath

package fmath

// SoftMath reports whether the integer-only backend is compiled in.
const SoftMath = true

// maxExact is the magnitude above which every float32 is already an integer.
const maxExact = 1 << 23

// Round rounds x to the nearest integer, half away from zero.
//
// Inputs at or beyond 2^23 are returned as-is; NaN propagates.
func Round(x float32) float32 {
	if x != x || x >= maxExact || x <= -maxExact {
		return x
	}
	if x < 0 {
		return -Round(-x)
	}
	t := float32(int32(x))
	if x-t >= 0.5 {
		t++
	}
	return t
}
