// Package cpufeat reports the SIMD level available to the batch kernels.
//
// Detection runs once per process. The batch kernels are written in plain
// Go over fixed-width arrays and rely on the compiler to vectorize them, so
// the level is used to size float lanes and to decide whether the opt-in
// fast path is worth taking at all.
package cpufeat

// Level identifies a SIMD instruction set.
type Level uint8

const (
	// Generic means no SIMD support was detected or probing was disabled.
	Generic Level = iota
	// SSE2 is the x86-64 baseline (128-bit).
	SSE2
	// AVX2 is 256-bit x86 SIMD.
	AVX2
	// AVX512 is 512-bit x86 SIMD.
	AVX512
	// NEON is ARM Advanced SIMD (128-bit).
	NEON
)

// String returns the lower-case instruction set name.
func (l Level) String() string {
	switch l {
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "generic"
	}
}

// Width returns the register width in bytes for the level.
func (l Level) Width() int {
	switch l {
	case AVX2:
		return 32
	case AVX512:
		return 64
	default:
		return 16
	}
}

// Lanes returns how many float32 values fit in one register.
func (l Level) Lanes() int {
	return l.Width() / 4
}

// Vectorized reports whether the level has real vector registers.
func (l Level) Vectorized() bool {
	return l != Generic
}

var detected = detect()

// Detect returns the level probed at package initialization.
func Detect() Level {
	return detected
}
