//go:build arm64 && !alphablend_noos

package cpufeat

import "golang.org/x/sys/cpu"

// Probed reports whether detection queried the CPU.
const Probed = true

func detect() Level {
	// ASIMD is part of the ARMv8-A baseline; checked for consistency.
	if cpu.ARM64.HasASIMD {
		return NEON
	}
	return Generic
}
