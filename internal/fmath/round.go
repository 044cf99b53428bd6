//go:build !alphablend_softmath

package fmath

import "math"

// SoftMath reports whether the integer-only backend is compiled in.
const SoftMath = false

// Round rounds x to the nearest integer, half away from zero.
func Round(x float32) float32 {
	return float32(math.Round(float64(x)))
}
