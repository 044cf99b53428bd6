package alphablend

import "github.com/gogpu/alphablend/internal/fmath"

// Blend composites src over dst with mode and returns the result.
//
// Both colors are premultiplied. Every channel is computed in the normalized
// domain as clamp01(Fa*s + Fb*d), where (Fa, Fb) are the mode's coefficients
// for the two input alphas, and converted back to domain C. Blend never
// fails: out-of-range inputs are clamped and undefined modes behave as
// Clear.
func Blend[C Channel[C]](src, dst Color[C], mode Mode) Color[C] {
	sf, df := mode.factors()
	sa, da := src.A.Normalized(), dst.A.Normalized()
	fa, fb := sf.eval(sa, da), df.eval(sa, da)

	var z C
	return Color[C]{
		R: z.FromNormalized(fmath.Mix(fa, src.R.Normalized(), fb, dst.R.Normalized())),
		G: z.FromNormalized(fmath.Mix(fa, src.G.Normalized(), fb, dst.G.Normalized())),
		B: z.FromNormalized(fmath.Mix(fa, src.B.Normalized(), fb, dst.B.Normalized())),
		A: z.FromNormalized(fmath.Mix(fa, sa, fb, da)),
	}
}
