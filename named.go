package xcolor

import (
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Named looks up an SVG 1.1 color keyword such as "cornflowerblue".
// Lookup ignores case. All named colors are opaque.
func Named(name string) (RGBA8, bool) {
	// A Caser carries state, so each call gets its own.
	c, ok := colornames.Map[cases.Fold().String(name)]
	if !ok {
		return RGBA8{}, false
	}
	return RGBA8{R: c.R, G: c.G, B: c.B, A: c.A}, true
}
