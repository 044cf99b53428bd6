// Package wide provides SIMD-friendly wide types for batch pixel blending.
//
// The types here (U32x16, F32x8) are fixed-size arrays processed with simple
// loops so the Go compiler can auto-vectorize them on SSE, AVX and NEON.
//
// # Wide Types
//
// U32x16: 16 uint32 lanes for 8-bit channel arithmetic. Products of two
// 8-bit values and sums of two such products fit without overflow.
// F32x8: 8 float32 lanes for normalized channel arithmetic.
//
// # Batches
//
// BatchU8 and BatchF32 hold source and destination pixels in
// Structure-of-Arrays (SoA) layout:
//
//	AoS: [R0, G0, B0, A0, R1, G1, B1, A1, ...]
//	SoA: SR: [R0, R1, ...]  SG: [G0, G1, ...]  SB: [...]  SA: [...]
//
// Loads and stores work on flat channel slices, which is what the zero-copy
// path in the root package hands over.
//
// # Determinism
//
// Float lanes delegate per-element math to package fmath, the same helpers
// the scalar engine uses, so a batch result is bit-identical to blending the
// same pixels one at a time.
package wide
