package blend

import (
	"errors"
	"fmt"

	"github.com/gogpu/xcolor"
)

var (
	// ErrUnknownMode is returned for a mode name or value that is not defined.
	ErrUnknownMode = errors.New("blend: unknown mode")

	// ErrAlphaRequired is returned when an alpha-driven mode is requested for
	// colors without alpha.
	ErrAlphaRequired = errors.New("blend: mode requires an alpha channel")
)

// Func is the signature for blend operations on colors with alpha.
type Func func(src, dst xcolor.RGBAF) xcolor.RGBAF

// FuncRGB is the signature for blend operations on colors without alpha.
type FuncRGB func(src, dst xcolor.RGBF) xcolor.RGBF

var funcs = [modeCount]Func{
	ModeClear:           Clear,
	ModeSource:          Source,
	ModeDestination:     Destination,
	ModeSourceOver:      SourceOver,
	ModeDestinationOver: DestinationOver,
	ModeSourceIn:        SourceIn,
	ModeDestinationIn:   DestinationIn,
	ModeSourceOut:       SourceOut,
	ModeDestinationOut:  DestinationOut,
	ModeSourceAtop:      SourceAtop,
	ModeDestinationAtop: DestinationAtop,
	ModeXor:             Xor,
	ModeDarken:          Darken,
	ModeLighten:         Lighten,
	ModeMultiply:        Multiply,
	ModeScreen:          Screen,
}

// GetFunc returns the blend function for the given mode.
// Returns SourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	if !mode.Valid() {
		xcolor.Logger().Warn("blend: unknown mode, using src-over", "mode", uint8(mode))
		return SourceOver
	}
	return funcs[mode]
}

// GetFuncRGB returns the blend function for colors without alpha.
// Only modes for which SupportsRGB is true have one.
func GetFuncRGB(mode Mode) (FuncRGB, error) {
	switch mode {
	case ModeClear:
		return ClearRGB, nil
	case ModeSource:
		return SourceRGB, nil
	case ModeDestination:
		return DestinationRGB, nil
	case ModeDarken:
		return DarkenRGB, nil
	case ModeLighten:
		return LightenRGB, nil
	case ModeMultiply:
		return MultiplyRGB, nil
	case ModeScreen:
		return ScreenRGB, nil
	}
	if mode.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrAlphaRequired, mode)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
}

// Blend blends two colors using the specified mode.
func Blend(src, dst xcolor.RGBAF, mode Mode) xcolor.RGBAF {
	return GetFunc(mode)(src, dst)
}

// BlendRGB blends two colors without alpha using the specified mode.
func BlendRGB(src, dst xcolor.RGBF, mode Mode) (xcolor.RGBF, error) {
	f, err := GetFuncRGB(mode)
	if err != nil {
		return xcolor.RGBF{}, err
	}
	return f(src, dst), nil
}
