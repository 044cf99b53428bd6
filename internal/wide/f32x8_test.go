package wide

import (
	"math"
	"testing"

	"github.com/gogpu/alphablend/internal/fmath"
)

func TestSplatF32(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplatF32(tt.value)
			for i, v := range result {
				if v != tt.value {
					t.Errorf("element %d = %f, want %f", i, v, tt.value)
				}
			}
		})
	}
}

func TestF32x8_Arithmetic(t *testing.T) {
	a := SplatF32(0.75)
	b := SplatF32(0.25)

	tests := []struct {
		name string
		got  F32x8
		want float32
	}{
		{"Add", a.Add(b), 1.0},
		{"Sub", a.Sub(b), 0.5},
		{"Mul", a.Mul(b), 0.1875},
		{"Sub from one", SplatF32(1).Sub(b), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, got := range tt.got {
				if got != tt.want {
					t.Errorf("element %d = %v, want %v", i, got, tt.want)
				}
			}
		})
	}
}

func TestF32x8_Clamp01(t *testing.T) {
	v := F32x8{-1, 0, 0.5, 1, 2, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))}
	want := F32x8{0, 0, 0.5, 1, 1, 0, 1, 0}
	if got := v.Clamp01(); got != want {
		t.Errorf("Clamp01() = %v, want %v", got, want)
	}
}

// TestF32x8_MixMatchesScalar pins the lane operation to the scalar helper.
func TestF32x8_MixMatchesScalar(t *testing.T) {
	s := F32x8{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.9, 1}
	d := F32x8{1, 0.9, 0.7, 0.3, 0.2, 0.5, 0.1, 1}
	fa := F32x8{1, 1, 0.5, 0.25, 0, 0.3, 0.9, 1}
	fb := SplatF32(1).Sub(s)

	got := s.Mix(fa, fb, d)
	for i := range got {
		want := fmath.Mix(fa[i], s[i], fb[i], d[i])
		if math.Float32bits(got[i]) != math.Float32bits(want) {
			t.Errorf("lane %d = %v, want %v", i, got[i], want)
		}
	}
}
