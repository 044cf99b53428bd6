package alphablend

import "github.com/gogpu/alphablend/internal/wide"

// lanesU8 returns the factor as 16 integer lanes in [0, 255].
func (f factor) lanesU8(sa, da wide.U32x16) wide.U32x16 {
	switch f {
	case factorOne:
		return wide.SplatU32(255)
	case factorSrcAlpha:
		return sa
	case factorDstAlpha:
		return da
	case factorOneMinusSrcAlpha:
		return sa.Inv()
	case factorOneMinusDstAlpha:
		return da.Inv()
	default:
		return wide.U32x16{}
	}
}

// lanesF32 returns the factor as 8 float lanes. The arithmetic matches
// factor.eval so batch and element results agree bit for bit.
func (f factor) lanesF32(sa, da wide.F32x8) wide.F32x8 {
	switch f {
	case factorOne:
		return wide.SplatF32(1)
	case factorSrcAlpha:
		return sa
	case factorDstAlpha:
		return da
	case factorOneMinusSrcAlpha:
		return wide.SplatF32(1).Sub(sa)
	case factorOneMinusDstAlpha:
		return wide.SplatF32(1).Sub(da)
	default:
		return wide.F32x8{}
	}
}

// blendFlatU8 blends packed RGBA8 pixels. out, src and dst hold the same
// number of whole pixels; out may be src or dst.
//
// With integer alpha A and channel S the float path computes
// round((A/255)*(S/255)*255). The exact quotient (Fa*S + Fb*D)/255 is never
// within 1/510 of a half, far beyond float32 error, so the integer kernel
// rounds to the same value.
func blendFlatU8(out, src, dst []byte, mode Mode) {
	sf, df := mode.factors()
	n := len(src) / 4

	var b wide.BatchU8
	i := 0
	for ; i+wide.BatchU8Pixels <= n; i += wide.BatchU8Pixels {
		off := i * 4
		b.LoadSrc(src[off:])
		b.LoadDst(dst[off:])

		fa := sf.lanesU8(b.SA, b.DA)
		fb := df.lanesU8(b.SA, b.DA)
		b.DR = b.SR.MulAdd(fa, b.DR, fb).Div255().Clamp(255)
		b.DG = b.SG.MulAdd(fa, b.DG, fb).Div255().Clamp(255)
		b.DB = b.SB.MulAdd(fa, b.DB, fb).Div255().Clamp(255)
		b.DA = b.SA.MulAdd(fa, b.DA, fb).Div255().Clamp(255)

		b.StoreDst(out[off:])
	}

	for ; i < n; i++ {
		off := i * 4
		c := Blend(
			RGBA8{R: U8(src[off]), G: U8(src[off+1]), B: U8(src[off+2]), A: U8(src[off+3])},
			RGBA8{R: U8(dst[off]), G: U8(dst[off+1]), B: U8(dst[off+2]), A: U8(dst[off+3])},
			mode,
		)
		out[off], out[off+1], out[off+2], out[off+3] = byte(c.R), byte(c.G), byte(c.B), byte(c.A)
	}
}

// blendFlatF32 blends packed RGBAF32 pixels. Same contract as blendFlatU8.
func blendFlatF32(out, src, dst []float32, mode Mode) {
	sf, df := mode.factors()
	n := len(src) / 4

	var b wide.BatchF32
	i := 0
	for ; i+wide.BatchF32Pixels <= n; i += wide.BatchF32Pixels {
		off := i * 4
		b.LoadSrc(src[off:])
		b.LoadDst(dst[off:])

		fa := sf.lanesF32(b.SA, b.DA)
		fb := df.lanesF32(b.SA, b.DA)
		b.DR = b.SR.Mix(fa, fb, b.DR)
		b.DG = b.SG.Mix(fa, fb, b.DG)
		b.DB = b.SB.Mix(fa, fb, b.DB)
		b.DA = b.SA.Mix(fa, fb, b.DA)

		b.StoreDst(out[off:])
	}

	for ; i < n; i++ {
		off := i * 4
		c := Blend(
			RGBAF32{R: F32(src[off]), G: F32(src[off+1]), B: F32(src[off+2]), A: F32(src[off+3])},
			RGBAF32{R: F32(dst[off]), G: F32(dst[off+1]), B: F32(dst[off+2]), A: F32(dst[off+3])},
			mode,
		)
		out[off], out[off+1], out[off+2], out[off+3] = float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	}
}
