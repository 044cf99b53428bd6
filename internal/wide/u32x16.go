package wide

// U32x16 represents 16 uint32 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type U32x16 [16]uint32

// SplatU32 creates U32x16 with all elements set to n.
func SplatU32(n uint32) U32x16 {
	var result U32x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
func (v U32x16) Add(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v U32x16) Mul(other U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
// Elements must be in [0, 255].
func (v U32x16) Inv() U32x16 {
	var result U32x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// Div255 divides each element by 255, rounding to nearest.
//
// x/255 never lands on a half, so (x+127)/255 is the exact nearest integer.
// The compiler lowers the constant division to a multiply and shift.
func (v U32x16) Div255() U32x16 {
	var result U32x16
	for i := range v {
		result[i] = (v[i] + 127) / 255
	}
	return result
}

// MulAdd computes v*a + b*c for each element.
func (v U32x16) MulAdd(a, b, c U32x16) U32x16 {
	var result U32x16
	for i := range v {
		result[i] = v[i]*a[i] + b[i]*c[i]
	}
	return result
}

// Clamp clamps each element to [0, maxVal].
func (v U32x16) Clamp(maxVal uint32) U32x16 {
	var result U32x16
	for i := range v {
		if v[i] > maxVal {
			result[i] = maxVal
		} else {
			result[i] = v[i]
		}
	}
	return result
}
