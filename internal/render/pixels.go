// Package render implements core.Canvas for the ebiten screen and the
// terminal, plus RGBA helpers used by the debug overlays.
package render

import (
	"image/color"

	"lifeboard/internal/core"
)

// FillBinaryRGBA converts the grid into RGBA pixels in buf, one pixel per
// cell. buf must hold 4*g.Len() bytes.
func FillBinaryRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < g.Len(); i++ {
		base := i * 4
		if g.Alive(i) {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last entry. When the palette
// is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, values []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(values)])
		return
	}

	last := len(palette) - 1
	for i, v := range values {
		idx := int(v)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Ramp returns n colors fading from transparent to tint at maxAlpha.
// Colors are premultiplied, as ebiten expects.
func Ramp(tint color.RGBA, n int, maxAlpha uint8) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := 1; i < n; i++ {
		a := uint32(maxAlpha) * uint32(i) / uint32(n-1)
		out[i] = color.RGBA{
			R: uint8(uint32(tint.R) * a / 0xff),
			G: uint8(uint32(tint.G) * a / 0xff),
			B: uint8(uint32(tint.B) * a / 0xff),
			A: uint8(a),
		}
	}
	return out
}
