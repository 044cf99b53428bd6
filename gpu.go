package alphablend

import "github.com/gogpu/gputypes"

// gpu returns the WebGPU blend factor with the same value as f.
func (f factor) gpu() gputypes.BlendFactor {
	switch f {
	case factorOne:
		return gputypes.BlendFactorOne
	case factorSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case factorDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case factorOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case factorOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	default:
		return gputypes.BlendFactorZero
	}
}

// BlendState returns the fixed-function GPU blend state that computes m on
// premultiplied render targets. Color and alpha use the same factors and
// BlendOperationAdd; the render target clamps to [0, 1].
func (m Mode) BlendState() gputypes.BlendState {
	src, dst := m.factors()
	c := gputypes.BlendComponent{
		SrcFactor: src.gpu(),
		DstFactor: dst.gpu(),
		Operation: gputypes.BlendOperationAdd,
	}
	return gputypes.BlendState{Color: c, Alpha: c}
}

// ColorTarget returns a color target state for format that blends with m and
// writes all channels.
//
// Example:
//
//	targets := []gputypes.ColorTargetState{
//	    alphablend.SourceOver.ColorTarget(gputypes.TextureFormatRGBA8Unorm),
//	}
func (m Mode) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	bs := m.BlendState()
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &bs,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}
