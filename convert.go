package xcolor

import "github.com/chewxy/math32"

// RGBToF32 converts an 8-bit color to float32.
// Each component [0,255] maps exactly onto {0, 1/255, ..., 1}.
func RGBToF32(c RGB8) RGBF {
	return RGBF{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
	}
}

// RGBAToF32 converts an 8-bit color with alpha to float32.
func RGBAToF32(c RGBA8) RGBAF {
	return FromRGB(RGBToF32(c.RGB()), float32(c.A)/255.0)
}

// RGBToU8 converts a float32 color to 8 bits.
//
// Each component is scaled by 255 and truncated toward zero, without
// rounding or clamping. Components outside [0,1] do not saturate, see
// [RGBAToU8].
func RGBToU8(c RGBF) RGB8 {
	return RGB8{
		R: narrow(c.R),
		G: narrow(c.G),
		B: narrow(c.B),
	}
}

// RGBAToU8 converts a float32 color with alpha to 8 bits.
//
// Scaled components go through a 32-bit unsigned intermediate before the
// low byte is kept: NaN and negative values become 0, values of 2^32 or more
// become 255, and anything else between 256 and 2^32 wraps (1.5 gives 126).
// Callers must not rely on out-of-range results.
func RGBAToU8(c RGBAF) RGBA8 {
	return FromRGB(RGBToU8(c.RGB()), narrow(c.A))
}

// narrow scales v by 255 and narrows it to a byte through a uint32.
func narrow(v float32) uint8 {
	x := v * 255
	switch {
	case math32.IsNaN(x) || x < 0:
		Logger().Debug("xcolor: channel out of range", "value", v)
		return 0
	case x >= 1<<32:
		Logger().Debug("xcolor: channel out of range", "value", v)
		return 0xFF
	case x >= 256:
		Logger().Debug("xcolor: channel out of range", "value", v)
	}
	return uint8(uint32(x))
}

// GrayF returns the weighted gray value r*0.33 + g*0.59 + b*0.11.
func GrayF(c RGBF) float32 {
	// Explicit conversions keep each product rounded so that no
	// architecture fuses the sum into an FMA.
	return float32(c.R*0.33) + float32(c.G*0.59) + float32(c.B*0.11)
}

// Gray8 returns the weighted gray value (r*28 + g*151 + b*77) >> 8.
//
// Gray8 and GrayF are independent approximations: converting a color and
// then reducing it need not match reducing it and then converting.
func Gray8(c RGB8) uint8 {
	return uint8((uint32(c.R)*28 + uint32(c.G)*151 + uint32(c.B)*77) >> 8)
}

// GrayAF returns GrayF of the color channels, ignoring alpha.
func GrayAF(c RGBAF) float32 {
	return GrayF(c.RGB())
}

// GrayA8 returns Gray8 of the color channels, ignoring alpha.
func GrayA8(c RGBA8) uint8 {
	return Gray8(c.RGB())
}

// ApproxEqualRGB reports whether every component of a and b differs by at
// most eps. NaN components never compare equal.
func ApproxEqualRGB(a, b RGBF, eps float32) bool {
	return math32.Abs(a.R-b.R) <= eps &&
		math32.Abs(a.G-b.G) <= eps &&
		math32.Abs(a.B-b.B) <= eps
}

// ApproxEqual is ApproxEqualRGB including alpha.
func ApproxEqual(a, b RGBAF, eps float32) bool {
	return ApproxEqualRGB(a.RGB(), b.RGB(), eps) && math32.Abs(a.A-b.A) <= eps
}
