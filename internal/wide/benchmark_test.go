package wide

import "testing"

// Benchmarks verify that the fixed-width loops stay cheap enough to
// auto-vectorize.

func BenchmarkU32x16_MulAdd(b *testing.B) {
	a := SplatU32(200)
	c := SplatU32(55)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.MulAdd(c, c, a)
	}
}

func BenchmarkU32x16_Div255(b *testing.B) {
	a := SplatU32(12750)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.Div255()
	}
}

func BenchmarkF32x8_Mix(b *testing.B) {
	s := SplatF32(0.4)
	d := SplatF32(0.6)
	fa := SplatF32(1)
	fb := SplatF32(0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Mix(fa, fb, d)
	}
}

func BenchmarkBatchU8_LoadStore(b *testing.B) {
	buf := make([]byte, 64)
	var batch BatchU8
	b.SetBytes(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		batch.LoadDst(buf)
		batch.StoreDst(buf)
	}
}
