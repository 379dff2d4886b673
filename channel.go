package xcolor

// Channel is the numeric domain of a color component.
//
// The set is closed: float32 holds normalized values (nominally
// [0,1], never clamped) and uint8 holds 8-bit values [0,255]. Derived types
// are not accepted, so code that needs per-domain behavior can switch on the
// two concrete types exhaustively.
type Channel interface {
	float32 | uint8
}

// clampToU8 converts a single component of either domain to a byte.
// Float components are clamped to [0,1] first.
func clampToU8[T Channel](v T) uint8 {
	switch x := any(v).(type) {
	case uint8:
		return x
	case float32:
		return narrow(clamp01(x))
	}
	panic("xcolor: unreachable channel type")
}

// clamp01 restricts a value to [0, 1] range. NaN becomes 0.
func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
