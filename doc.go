// Package alphablend composites premultiplied RGBA colors with the
// Porter-Duff operators.
//
// # Overview
//
// A blend takes a source and a destination color and a Mode, and produces one
// result color. The 13 modes form a closed set; each is a pair of
// coefficients (Fa, Fb) drawn from {0, 1, sa, da, 1-sa, 1-da}:
//
//	result = clamp01(Fa*src + Fb*dst)
//
// applied to alpha and to each premultiplied color channel.
//
// # Quick Start
//
//	src := alphablend.RGBA8{R: 255, G: 0, B: 0, A: 255} // opaque red
//	dst := alphablend.RGBA8{R: 0, G: 0, B: 255, A: 255} // opaque blue
//	out := alphablend.Blend(src, dst, alphablend.SourceOver)
//
// # Channel Domains
//
// Color is generic over its channel type. Any type implementing Channel can
// be used; U8 (0-255), U16 (0-65535) and F32 (0.0-1.0) are provided. All
// arithmetic runs in the normalized float32 domain, so the formula table is
// written once for every representation. Out-of-range values are clamped,
// never reported.
//
// # Buffers
//
// BlendBuffer and BlendBufferInto apply one mode across two equal-length
// slices. Elements are independent, so the range may be split across
// goroutines (WithWorkers) and, for channel types that certify a plain
// memory layout (PlainLayout), processed through a zero-copy batch path
// (WithFastPath). Both options change throughput only; results are
// identical to blending element by element.
//
// # Build Tags
//
//   - alphablend_softmath: integer-only rounding instead of package math.
//   - alphablend_nounsafe: no unsafe reinterpretation; the fast path and the
//     zero-copy views fall back to copying.
//   - alphablend_noos: no environment variables and no CPU probing.
//
// # Premultiplied Alpha
//
// Colors are premultiplied everywhere: R, G and B already carry the alpha
// weighting. Use Color.Premultiply and Color.Unpremultiply at the boundary
// with straight-alpha data.
package alphablend

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
