package xcolor

import "image/color"

// RGBA implements the color.Color interface.
// It returns alpha-premultiplied 16-bit components, as [color.NRGBA] does.
func (c RGBA[T]) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard non-premultiplied 8-bit color.
// Float components are clamped to [0,1] before conversion, unlike RGBAToU8.
func (c RGBA[T]) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampToU8(c.R),
		G: clampToU8(c.G),
		B: clampToU8(c.B),
		A: clampToU8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA8.
// Colors of this package convert without a 16-bit round trip; any other
// premultiplied color is converted back to straight alpha.
func FromColor(c color.Color) RGBA8 {
	switch v := c.(type) {
	case RGBA8:
		return v
	case RGBAF:
		n := v.NRGBA()
		return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8{R: n.R, G: n.G, B: n.B, A: n.A}
}
