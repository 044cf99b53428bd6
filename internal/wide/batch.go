package wide

import "github.com/gogpu/alphablend/internal/fmath"

// BatchU8 holds 16 RGBA pixels with 8-bit channels for batch processing.
// Uses Structure-of-Arrays (SoA) layout, widened to 32 bits so that
// two-term products cannot overflow.
type BatchU8 struct {
	SR, SG, SB, SA U32x16 // Source RGBA (16 pixels)
	DR, DG, DB, DA U32x16 // Destination RGBA (16 pixels)
}

// BatchU8Pixels is the number of pixels held by a BatchU8.
const BatchU8Pixels = 16

// LoadSrc loads 16 RGBA pixels from byte slice into source channels.
// src must have at least 64 bytes (16 pixels * 4 bytes).
func (b *BatchU8) LoadSrc(src []byte) {
	_ = src[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		b.SR[i] = uint32(src[offset+0])
		b.SG[i] = uint32(src[offset+1])
		b.SB[i] = uint32(src[offset+2])
		b.SA[i] = uint32(src[offset+3])
	}
}

// LoadDst loads 16 RGBA pixels from byte slice into destination channels.
// dst must have at least 64 bytes (16 pixels * 4 bytes).
func (b *BatchU8) LoadDst(dst []byte) {
	_ = dst[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		b.DR[i] = uint32(dst[offset+0])
		b.DG[i] = uint32(dst[offset+1])
		b.DB[i] = uint32(dst[offset+2])
		b.DA[i] = uint32(dst[offset+3])
	}
}

// StoreDst stores the 16 destination pixels to out.
// out must have at least 64 bytes; lanes are expected to be in [0, 255].
func (b *BatchU8) StoreDst(out []byte) {
	_ = out[63]
	for i := 0; i < 16; i++ {
		offset := i * 4
		out[offset+0] = uint8(b.DR[i]) // #nosec G115
		out[offset+1] = uint8(b.DG[i]) // #nosec G115
		out[offset+2] = uint8(b.DB[i]) // #nosec G115
		out[offset+3] = uint8(b.DA[i]) // #nosec G115
	}
}

// BatchF32 holds 8 RGBA pixels with normalized float32 channels.
type BatchF32 struct {
	SR, SG, SB, SA F32x8 // Source RGBA (8 pixels)
	DR, DG, DB, DA F32x8 // Destination RGBA (8 pixels)
}

// BatchF32Pixels is the number of pixels held by a BatchF32.
const BatchF32Pixels = 8

// LoadSrc loads 8 RGBA pixels from src (at least 32 values), clamping each
// channel into [0, 1].
func (b *BatchF32) LoadSrc(src []float32) {
	_ = src[31]
	for i := 0; i < 8; i++ {
		offset := i * 4
		b.SR[i] = fmath.Clamp01(src[offset+0])
		b.SG[i] = fmath.Clamp01(src[offset+1])
		b.SB[i] = fmath.Clamp01(src[offset+2])
		b.SA[i] = fmath.Clamp01(src[offset+3])
	}
}

// LoadDst loads 8 RGBA pixels from dst (at least 32 values), clamping each
// channel into [0, 1].
func (b *BatchF32) LoadDst(dst []float32) {
	_ = dst[31]
	for i := 0; i < 8; i++ {
		offset := i * 4
		b.DR[i] = fmath.Clamp01(dst[offset+0])
		b.DG[i] = fmath.Clamp01(dst[offset+1])
		b.DB[i] = fmath.Clamp01(dst[offset+2])
		b.DA[i] = fmath.Clamp01(dst[offset+3])
	}
}

// StoreDst stores the 8 destination pixels to out (at least 32 values).
func (b *BatchF32) StoreDst(out []float32) {
	_ = out[31]
	for i := 0; i < 8; i++ {
		offset := i * 4
		out[offset+0] = b.DR[i]
		out[offset+1] = b.DG[i]
		out[offset+2] = b.DB[i]
		out[offset+3] = b.DA[i]
	}
}
