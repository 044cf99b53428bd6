//go:build !alphablend_nounsafe

package alphablend

import (
	"unsafe"

	"golang.org/x/image/math/f32"
)

// zeroCopy reports whether buffers may be reinterpreted in place.
const zeroCopy = true

// blendPlain runs the fast path over colors whose channel type certified
// lane. It returns false, doing nothing, when C does not fit the lane.
func blendPlain[C Channel[C]](out, src, dst []Color[C], mode Mode, lane Lane) bool {
	var z Color[C]
	switch lane {
	case LaneU8:
		if unsafe.Sizeof(z) != 4 {
			return false
		}
		blendFlatU8(flatten[byte](out), flatten[byte](src), flatten[byte](dst), mode)
		return true
	case LaneF32:
		if unsafe.Sizeof(z) != 16 {
			return false
		}
		blendFlatF32(flatten[float32](out), flatten[float32](src), flatten[float32](dst), mode)
		return true
	default:
		return false
	}
}

// flatten reinterprets a slice of four-lane colors as a slice of lanes.
func flatten[L any, C Channel[C]](s []Color[C]) []L {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*L)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*4)
}

// ViewPix returns the pixels of an image.RGBA Pix slice as colors. The
// result shares memory with pix; a trailing partial pixel is dropped.
func ViewPix(pix []byte) []RGBA8 {
	n := len(pix) / 4
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*RGBA8)(unsafe.Pointer(unsafe.SliceData(pix))), n)
}

// Pix returns the bytes of colors in image.RGBA Pix order. The result shares
// memory with colors.
func Pix(colors []RGBA8) []byte {
	return flatten[byte](colors)
}

// ViewVec4 returns colors as normalized vectors sharing their memory.
func ViewVec4(colors []RGBAF32) []f32.Vec4 {
	if len(colors) == 0 {
		return nil
	}
	return unsafe.Slice((*f32.Vec4)(unsafe.Pointer(unsafe.SliceData(colors))), len(colors))
}
