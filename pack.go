package xcolor

// UnpackRGB creates a color from a packed 0xRRGGBB value.
// Bits 31-24 are ignored.
func UnpackRGB(v uint32) RGB8 {
	return RGB8{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// PackRGB packs c as 0x00RRGGBB. It is the inverse of UnpackRGB for all
// 24-bit values.
func PackRGB(c RGB8) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackRGBA creates a color from a packed 0xRRGGBBAA value.
func UnpackRGBA(v uint32) RGBA8 {
	return RGBA8{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// PackRGBA packs c as 0xRRGGBBAA.
func PackRGBA(c RGBA8) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// PackRGBF converts c to 8 bits with RGBToU8 and packs it.
func PackRGBF(c RGBF) uint32 {
	return PackRGB(RGBToU8(c))
}

// PackRGBAF converts c to 8 bits with RGBAToU8 and packs it.
func PackRGBAF(c RGBAF) uint32 {
	return PackRGBA(RGBAToU8(c))
}
