package blend

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Mode represents a blending mode.
type Mode uint8

const (
	// Porter-Duff modes
	ModeClear           Mode = iota // Result: 0
	ModeSource                      // Result: S
	ModeDestination                 // Result: D
	ModeSourceOver                  // Result: S + D*(1-Sa)
	ModeDestinationOver             // Result: S*(1-Da) + D
	ModeSourceIn                    // Result: S*Da
	ModeDestinationIn               // Result: D*Sa
	ModeSourceOut                   // Result: S*(1-Da)
	ModeDestinationOut              // Result: D*(1-Sa)
	ModeSourceAtop                  // Result: S*Da + D*(1-Sa)
	ModeDestinationAtop             // Result: S*(1-Da) + D*Sa
	ModeXor                         // Result: S*(1-Da) + D*(1-Sa)

	// Simple blend modes
	ModeDarken   // Result: darker of S and D by gray value, opaque
	ModeLighten  // Result: lighter of S and D by gray value, opaque
	ModeMultiply // Result: S*D
	ModeScreen   // Result: 1 - (1-S)*(1-D)

	modeCount
)

var modeNames = [modeCount]string{
	ModeClear:           "clear",
	ModeSource:          "src",
	ModeDestination:     "dst",
	ModeSourceOver:      "src-over",
	ModeDestinationOver: "dst-over",
	ModeSourceIn:        "src-in",
	ModeDestinationIn:   "dst-in",
	ModeSourceOut:       "src-out",
	ModeDestinationOut:  "dst-out",
	ModeSourceAtop:      "src-atop",
	ModeDestinationAtop: "dst-atop",
	ModeXor:             "xor",
	ModeDarken:          "darken",
	ModeLighten:         "lighten",
	ModeMultiply:        "multiply",
	ModeScreen:          "screen",
}

// String returns the short name of the mode, e.g. "src-over".
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// SupportsRGB reports whether m is meaningful for colors without alpha.
// Porter-Duff modes other than clear, src and dst need an alpha channel.
func (m Mode) SupportsRGB() bool {
	switch m {
	case ModeClear, ModeSource, ModeDestination,
		ModeDarken, ModeLighten, ModeMultiply, ModeScreen:
		return true
	}
	return false
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// ParseMode returns the mode with the given name.
// Matching ignores case and treats '_' like '-', so "SRC_OVER" parses.
func ParseMode(name string) (Mode, error) {
	s := strings.ReplaceAll(cases.Fold().String(name), "_", "-")
	for m, n := range modeNames {
		if n == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
