// Package xcolor provides small color value types and the arithmetic,
// conversion and packing rules between them.
//
// # Types
//
// [RGB] and [RGBA] are generic over a [Channel] domain: float32 for
// normalized colors and uint8 for 8-bit colors. The aliases [RGBF],
// [RGBAF], [RGB8] and [RGBA8] name the four concrete types.
//
//	c1 := xcolor.NewRGBA[float32](1, 1, 0, 1)
//	c2 := xcolor.NewRGBA[uint8](255, 255, 0, 255)
//	c3 := xcolor.UnpackRGBA(0xFFFF00FF)
//
// # Arithmetic
//
// Add, Sub, Mul and Div work per component. Byte colors wrap modulo 256 and
// float colors are never clamped. Alpha is not part of the arithmetic: an
// RGBA result keeps the receiver's alpha.
//
//	c2.Add(c3) // {254 254 0 255}
//
// # Conversion
//
// [RGBAToF32] divides by 255. [RGBAToU8] multiplies by 255 and truncates
// toward zero; out-of-range floats are not clamped.
//
// # Blending
//
// Porter-Duff and simple blend modes live in the blend sub-package and
// operate on float colors only.
package xcolor
