//go:build (!amd64 && !arm64) || alphablend_noos

package cpufeat

// Probed reports whether detection queried the CPU.
const Probed = false

func detect() Level {
	return Generic
}
