package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeString(t *testing.T) {
	assert.Equal(t, "clear", ModeClear.String())
	assert.Equal(t, "src-over", ModeSourceOver.String())
	assert.Equal(t, "dst-atop", ModeDestinationAtop.String())
	assert.Equal(t, "screen", ModeScreen.String())
	assert.Equal(t, "Mode(200)", Mode(200).String())
}

func TestParseModeRoundTrip(t *testing.T) {
	modes := Modes()
	require.Len(t, modes, 16)
	for _, m := range modes {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParseModeVariants(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"SRC_OVER", ModeSourceOver},
		{"Dst-In", ModeDestinationIn},
		{"xor", ModeXor},
		{"Multiply", ModeMultiply},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseMode("overlay")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestSupportsRGB(t *testing.T) {
	var rgb []Mode
	for _, m := range Modes() {
		if m.SupportsRGB() {
			rgb = append(rgb, m)
		}
	}
	assert.Equal(t, []Mode{ModeClear, ModeSource, ModeDestination,
		ModeDarken, ModeLighten, ModeMultiply, ModeScreen}, rgb)
	assert.False(t, Mode(200).SupportsRGB())
	assert.False(t, Mode(200).Valid())
}
