package blend

import "github.com/gogpu/gputypes"

// component builds an additive blend component S*src + D*dst.
func component(src, dst gputypes.BlendFactor) gputypes.BlendComponent {
	return gputypes.BlendComponent{
		SrcFactor: src,
		DstFactor: dst,
		Operation: gputypes.BlendOperationAdd,
	}
}

// GPUBlendState returns the fixed-function blend state that computes m on
// the GPU, with the same factors for color and alpha.
//
// Darken and lighten compare gray values and have no fixed-function form;
// for them, and for unknown modes, ok is false.
func (m Mode) GPUBlendState() (state gputypes.BlendState, ok bool) {
	var src, dst gputypes.BlendFactor
	switch m {
	case ModeClear:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorZero
	case ModeSource:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorZero
	case ModeDestination:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOne
	case ModeSourceOver:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha
	case ModeDestinationOver:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne
	case ModeSourceIn:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero
	case ModeDestinationIn:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha
	case ModeSourceOut:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero
	case ModeDestinationOut:
		src, dst = gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha
	case ModeSourceAtop:
		src, dst = gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case ModeDestinationAtop:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha
	case ModeXor:
		src, dst = gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha
	case ModeMultiply:
		src, dst = gputypes.BlendFactorDst, gputypes.BlendFactorZero
	case ModeScreen:
		src, dst = gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc
	default:
		return gputypes.BlendState{}, false
	}
	c := component(src, dst)
	return gputypes.BlendState{Color: c, Alpha: c}, true
}
