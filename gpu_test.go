package alphablend

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
)

func TestBlendStateWellKnown(t *testing.T) {
	if diff := cmp.Diff(gputypes.BlendStatePremultiplied(), SourceOver.BlendState()); diff != "" {
		t.Errorf("SourceOver mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(gputypes.BlendStateReplace(), Source.BlendState()); diff != "" {
		t.Errorf("Source mismatch (-want +got):\n%s", diff)
	}
}

// gpuFactorValue evaluates a WebGPU alpha factor.
func gpuFactorValue(f gputypes.BlendFactor, sa, da float32) float32 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrcAlpha:
		return sa
	case gputypes.BlendFactorDstAlpha:
		return da
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - sa
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - da
	default:
		return -1
	}
}

func TestBlendStateMatchesCoefficients(t *testing.T) {
	const sa, da = 0.25, 0.625
	for _, m := range append(Modes(), Mode(modeCount)) {
		bs := m.BlendState()
		if bs.Color != bs.Alpha {
			t.Errorf("%v: color %+v and alpha %+v differ", m, bs.Color, bs.Alpha)
		}
		if bs.Color.Operation != gputypes.BlendOperationAdd {
			t.Errorf("%v: operation = %v, want Add", m, bs.Color.Operation)
		}
		if bs.Color.UsesConstant() {
			t.Errorf("%v: uses the blend constant", m)
		}
		fa, fb := m.Coefficients(sa, da)
		if got := gpuFactorValue(bs.Color.SrcFactor, sa, da); got != fa {
			t.Errorf("%v: src factor %v = %v, want %v", m, bs.Color.SrcFactor, got, fa)
		}
		if got := gpuFactorValue(bs.Color.DstFactor, sa, da); got != fb {
			t.Errorf("%v: dst factor %v = %v, want %v", m, bs.Color.DstFactor, got, fb)
		}
	}
}

func TestColorTarget(t *testing.T) {
	ct := DestinationOut.ColorTarget(gputypes.TextureFormatBGRA8Unorm)
	if ct.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v", ct.Format)
	}
	if ct.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v", ct.WriteMask)
	}
	if ct.Blend == nil || *ct.Blend != DestinationOut.BlendState() {
		t.Errorf("Blend = %+v", ct.Blend)
	}
}
