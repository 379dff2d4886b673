package blend_test

import (
	"fmt"

	"github.com/gogpu/xcolor"
	"github.com/gogpu/xcolor/blend"
)

func ExampleSourceAtop() {
	src := xcolor.RGBAToF32(xcolor.NewRGBA[uint8](128, 133, 0, 128))
	dst := xcolor.NewRGBA[float32](0.4, 0.2, 0.1, 0.5)
	fmt.Println(xcolor.RGBAToU8(blend.SourceAtop(src, dst)))
	// Output: {114 91 12 127}
}

func ExampleBlend() {
	mode, err := blend.ParseMode("src-over")
	if err != nil {
		panic(err)
	}
	src := xcolor.NewRGBA[float32](1, 0, 0, 0.5)
	dst := xcolor.NewRGBA[float32](0, 0, 1, 1)
	fmt.Println(blend.Blend(src, dst, mode))
	// Output: {1 0 0.5 1}
}

func ExampleBlendRGB() {
	_, err := blend.BlendRGB(xcolor.RGBF{}, xcolor.RGBF{}, blend.ModeXor)
	fmt.Println(err)
	// Output: blend: mode requires an alpha channel: xor
}
