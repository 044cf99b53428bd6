//go:build amd64 && !alphablend_noos

package cpufeat

import "golang.org/x/sys/cpu"

// Probed reports whether detection queried the CPU.
const Probed = true

func detect() Level {
	switch {
	case cpu.X86.HasAVX512F:
		return AVX512
	case cpu.X86.HasAVX2:
		return AVX2
	case cpu.X86.HasSSE2:
		return SSE2
	default:
		return Generic
	}
}
