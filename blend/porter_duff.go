// Package blend implements Porter-Duff compositing operators and simple
// blend modes between two float colors.
//
// Colors use straight (non-premultiplied) alpha in [0,1]. Every function is
// pure and total: nothing is clamped and nothing divides, so out-of-range
// inputs produce out-of-range outputs rather than errors.
//
// Byte colors are not blended directly. Convert them first:
//
//	out := blend.SourceOver(xcolor.RGBAToF32(src), xcolor.RGBAToF32(dst))
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

import "github.com/gogpu/xcolor"

// Clear clears to transparent black.
func Clear(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return xcolor.RGBAF{}
}

// Source replaces destination with source.
func Source(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return src
}

// Destination keeps destination unchanged.
func Destination(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return dst
}

// SourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func SourceOver(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return sum(src, 1, dst, 1-src.A)
}

// DestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func DestinationOver(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return sum(src, 1-dst.A, dst, 1)
}

// SourceIn shows source where destination is opaque.
// Formula: S * Da
func SourceIn(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return scale(src, dst.A)
}

// DestinationIn shows destination where source is opaque.
// Formula: D * Sa
func DestinationIn(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return scale(dst, src.A)
}

// SourceOut shows source where destination is transparent.
// Formula: S * (1 - Da)
func SourceOut(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return scale(src, 1-dst.A)
}

// DestinationOut shows destination where source is transparent.
// Formula: D * (1 - Sa)
func DestinationOut(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return scale(dst, 1-src.A)
}

// SourceAtop composites source over destination inside the destination.
// Formula: S * Da + D * (1 - Sa)
func SourceAtop(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return sum(src, dst.A, dst, 1-src.A)
}

// DestinationAtop composites destination over source inside the source.
// Formula: S * (1 - Da) + D * Sa
func DestinationAtop(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return sum(src, 1-dst.A, dst, src.A)
}

// Xor shows source and destination where they don't overlap.
// Formula: S * (1 - Da) + D * (1 - Sa)
func Xor(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return sum(src, 1-dst.A, dst, 1-src.A)
}

// scale multiplies all four channels of c by f.
func scale(c xcolor.RGBAF, f float32) xcolor.RGBAF {
	return xcolor.RGBAF{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A * f}
}

// sum returns s*fs + d*fd on all four channels.
// Products are rounded before the addition so results do not depend on
// whether the target fuses multiply-add.
func sum(s xcolor.RGBAF, fs float32, d xcolor.RGBAF, fd float32) xcolor.RGBAF {
	return xcolor.RGBAF{
		R: float32(s.R*fs) + float32(d.R*fd),
		G: float32(s.G*fs) + float32(d.G*fd),
		B: float32(s.B*fs) + float32(d.B*fd),
		A: float32(s.A*fs) + float32(d.A*fd),
	}
}
