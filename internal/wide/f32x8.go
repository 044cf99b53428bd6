package wide

import "github.com/gogpu/alphablend/internal/fmath"

// F32x8 represents 8 float32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x8 [8]float32

// SplatF32 creates F32x8 with all elements set to n.
func SplatF32(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x8) Sub(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = float32(v[i] * other[i])
	}
	return result
}

// Clamp01 clamps each element to [0, 1]; NaN lanes become 0.
func (v F32x8) Clamp01() F32x8 {
	var result F32x8
	for i := range v {
		result[i] = fmath.Clamp01(v[i])
	}
	return result
}

// Mix computes clamp01(fa*v + fb*d) for each element.
// See fmath.Mix for the rounding contract.
func (v F32x8) Mix(fa, fb, d F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = fmath.Mix(fa[i], v[i], fb[i], d[i])
	}
	return result
}
