package xcolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Verify at compile time that both domains implement color.Color.
var (
	_ color.Color = RGBA8{}
	_ color.Color = RGBAF{}
)

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          color.Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", RGBA8{0, 0, 0, 255}, 0, 0, 0, 0xffff},
		{"opaque white float", RGBAF{1, 1, 1, 1}, 0xffff, 0xffff, 0xffff, 0xffff},
		{"transparent", RGBAF{}, 0, 0, 0, 0},
		{"clamped float", RGBAF{2, -1, 0, 1}, 0xffff, 0, 0, 0xffff},
		{"50% alpha red", RGBA8{255, 0, 0, 128}, 0x8080, 0, 0, 0x8080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			assert.Equal(t, []uint32{tt.wantR, tt.wantG, tt.wantB, tt.wantA}, []uint32{r, g, b, a})
		})
	}
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, RGBA8{1, 2, 3, 4}, FromColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}))
	assert.Equal(t, RGBA8{255, 0, 0, 128}, FromColor(color.RGBA{R: 128, A: 128}))
	assert.Equal(t, RGBA8{10, 20, 30, 40}, FromColor(RGBA8{10, 20, 30, 40}))
	assert.Equal(t, color.NRGBA{R: 255, G: 127, A: 255}, RGBAF{1, 0.5, 0, 1}.NRGBA())
}

func TestFromColorOwnTypesExact(t *testing.T) {
	for a := 1; a <= 255; a++ {
		for v := 0; v <= 255; v++ {
			c := RGBA8{uint8(v), uint8(255 - v), uint8(v / 3), uint8(a)}
			if got := FromColor(c); got != c {
				t.Fatalf("FromColor(%v) = %v", c, got)
			}
		}
	}
	assert.Equal(t, RGBA8{1, 1, 1, 1}, FromColor(RGBA8{1, 1, 1, 1}))
	assert.Equal(t, RGBA8{255, 127, 0, 1}, FromColor(RGBAF{R: 1, G: 0.5, A: 1.0 / 255}))
}
