//go:build alphablend_nounsafe

package alphablend

import "golang.org/x/image/math/f32"

const zeroCopy = false

func blendPlain[C Channel[C]](out, src, dst []Color[C], mode Mode, lane Lane) bool {
	return false
}

// ViewPix returns a copy of the pixels in pix as colors; a trailing partial
// pixel is dropped. Memory is not shared in this build.
func ViewPix(pix []byte) []RGBA8 {
	n := len(pix) / 4
	if n == 0 {
		return nil
	}
	colors := make([]RGBA8, n)
	for i := range colors {
		p := pix[i*4 : i*4+4 : i*4+4]
		colors[i] = RGBA8{R: U8(p[0]), G: U8(p[1]), B: U8(p[2]), A: U8(p[3])}
	}
	return colors
}

// Pix returns a copy of colors in image.RGBA Pix order.
func Pix(colors []RGBA8) []byte {
	if len(colors) == 0 {
		return nil
	}
	pix := make([]byte, len(colors)*4)
	for i, c := range colors {
		pix[i*4+0] = byte(c.R)
		pix[i*4+1] = byte(c.G)
		pix[i*4+2] = byte(c.B)
		pix[i*4+3] = byte(c.A)
	}
	return pix
}

// ViewVec4 returns a copy of colors as vectors.
func ViewVec4(colors []RGBAF32) []f32.Vec4 {
	if len(colors) == 0 {
		return nil
	}
	vecs := make([]f32.Vec4, len(colors))
	for i, c := range colors {
		vecs[i] = f32.Vec4{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
	}
	return vecs
}
