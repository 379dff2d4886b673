package xcolor

import "cmp"

// RGBA is a four-channel color over the domain T.
// Components are not premultiplied by alpha.
//
// Arithmetic on RGBA acts on color only: the alpha of the result is always
// the alpha of the receiver.
type RGBA[T Channel] struct {
	R, G, B, A T
}

// RGBA8 is a four-channel color with 8-bit components.
type RGBA8 = RGBA[uint8]

// RGBAF is a four-channel color with float32 components.
type RGBAF = RGBA[float32]

// NewRGBA creates a color from four components.
func NewRGBA[T Channel](r, g, b, a T) RGBA[T] {
	return RGBA[T]{R: r, G: g, B: b, A: a}
}

// FromRGB creates a four-channel color from c and an explicit alpha.
func FromRGB[T Channel](c RGB[T], a T) RGBA[T] {
	return RGBA[T]{R: c.R, G: c.G, B: c.B, A: a}
}

// RGB drops the alpha channel.
func (c RGBA[T]) RGB() RGB[T] {
	return RGB[T]{R: c.R, G: c.G, B: c.B}
}

// Compare orders colors lexicographically by R, G, B, then A.
func (c RGBA[T]) Compare(o RGBA[T]) int {
	if n := c.RGB().Compare(o.RGB()); n != 0 {
		return n
	}
	return cmp.Compare(c.A, o.A)
}

// Add returns the component-wise sum of the color channels.
func (c RGBA[T]) Add(o RGBA[T]) RGBA[T] {
	return FromRGB(c.RGB().Add(o.RGB()), c.A)
}

// Sub returns the component-wise difference of the color channels.
func (c RGBA[T]) Sub(o RGBA[T]) RGBA[T] {
	return FromRGB(c.RGB().Sub(o.RGB()), c.A)
}

// Mul returns the component-wise product of the color channels.
func (c RGBA[T]) Mul(o RGBA[T]) RGBA[T] {
	return FromRGB(c.RGB().Mul(o.RGB()), c.A)
}

// Div returns the component-wise quotient of the color channels.
// See [RGB.Div] for the zero divisor rules.
func (c RGBA[T]) Div(o RGBA[T]) RGBA[T] {
	return FromRGB(c.RGB().Div(o.RGB()), c.A)
}
