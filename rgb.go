package xcolor

import "cmp"

// RGB is a three-channel color over the domain T.
//
// RGB is a plain value: it is copied freely and never mutated by any
// function in this package. The zero value is black in both domains.
type RGB[T Channel] struct {
	R, G, B T
}

// RGB8 is a three-channel color with 8-bit components.
type RGB8 = RGB[uint8]

// RGBF is a three-channel color with float32 components.
type RGBF = RGB[float32]

// NewRGB creates a color from three components.
func NewRGB[T Channel](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// Compare orders colors lexicographically by R, then G, then B.
// It returns -1, 0 or +1 like [cmp.Compare].
func (c RGB[T]) Compare(o RGB[T]) int {
	if n := cmp.Compare(c.R, o.R); n != 0 {
		return n
	}
	if n := cmp.Compare(c.G, o.G); n != 0 {
		return n
	}
	return cmp.Compare(c.B, o.B)
}

// Add returns the component-wise sum.
// Byte components wrap modulo 256; float components are not clamped.
func (c RGB[T]) Add(o RGB[T]) RGB[T] {
	return RGB[T]{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the component-wise difference.
// Byte components wrap modulo 256; float components are not clamped.
func (c RGB[T]) Sub(o RGB[T]) RGB[T] {
	return RGB[T]{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Mul returns the component-wise product.
// Byte components keep the low 8 bits of the product.
func (c RGB[T]) Mul(o RGB[T]) RGB[T] {
	return RGB[T]{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Div returns the component-wise quotient.
//
// Byte components use floor division and a zero divisor panics with the
// runtime's integer divide error. Float components follow IEEE-754, so a
// zero divisor gives ±Inf or NaN.
func (c RGB[T]) Div(o RGB[T]) RGB[T] {
	return RGB[T]{R: c.R / o.R, G: c.G / o.G, B: c.B / o.B}
}
