package blend

import "github.com/gogpu/xcolor"

// Darken keeps whichever color has the lower gray value, made opaque.
// Equal gray values resolve to the destination.
func Darken(src, dst xcolor.RGBAF) xcolor.RGBAF {
	if xcolor.GrayAF(src) < xcolor.GrayAF(dst) {
		return xcolor.FromRGB(src.RGB(), 1)
	}
	return xcolor.FromRGB(dst.RGB(), 1)
}

// Lighten keeps whichever color has the higher gray value, made opaque.
// Equal gray values resolve to the destination.
func Lighten(src, dst xcolor.RGBAF) xcolor.RGBAF {
	if xcolor.GrayAF(src) > xcolor.GrayAF(dst) {
		return xcolor.FromRGB(src.RGB(), 1)
	}
	return xcolor.FromRGB(dst.RGB(), 1)
}

// Multiply multiplies source and destination, alpha included.
// Formula: S * D
func Multiply(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return xcolor.RGBAF{R: src.R * dst.R, G: src.G * dst.G, B: src.B * dst.B, A: src.A * dst.A}
}

// Screen multiplies the complements, alpha included.
// Formula: 1 - (1 - S) * (1 - D)
func Screen(src, dst xcolor.RGBAF) xcolor.RGBAF {
	return xcolor.RGBAF{
		R: screen(src.R, dst.R),
		G: screen(src.G, dst.G),
		B: screen(src.B, dst.B),
		A: screen(src.A, dst.A),
	}
}

func screen(s, d float32) float32 {
	return 1 - float32((1-s)*(1-d))
}

// ClearRGB returns black.
func ClearRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	return xcolor.RGBF{}
}

// SourceRGB returns src.
func SourceRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	return src
}

// DestinationRGB returns dst.
func DestinationRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	return dst
}

// DarkenRGB keeps whichever color has the lower gray value.
// Equal gray values resolve to the destination.
func DarkenRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	if xcolor.GrayF(src) < xcolor.GrayF(dst) {
		return src
	}
	return dst
}

// LightenRGB keeps whichever color has the higher gray value.
// Equal gray values resolve to the destination.
func LightenRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	if xcolor.GrayF(src) > xcolor.GrayF(dst) {
		return src
	}
	return dst
}

// MultiplyRGB multiplies source and destination.
func MultiplyRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	return src.Mul(dst)
}

// ScreenRGB multiplies the complements.
func ScreenRGB(src, dst xcolor.RGBF) xcolor.RGBF {
	return xcolor.RGBF{
		R: screen(src.R, dst.R),
		G: screen(src.G, dst.G),
		B: screen(src.B, dst.B),
	}
}
