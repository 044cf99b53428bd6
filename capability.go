package alphablend

import (
	"context"
	"log/slog"

	"github.com/gogpu/alphablend/internal/cpufeat"
	"github.com/gogpu/alphablend/internal/fmath"
)

// Capability describes how this build of the package executes.
type Capability struct {
	// SIMD is the instruction set level detected on this CPU, e.g. "avx2".
	// It is "generic" when detection is compiled out.
	SIMD string

	// FloatLanes is the number of float32 values one vector register holds.
	FloatLanes int

	// ZeroCopy reports whether the fast path and the views share memory.
	// False under the alphablend_nounsafe build tag.
	ZeroCopy bool

	// SoftMath reports whether rounding avoids package math.
	SoftMath bool

	// NoOS reports whether environment and CPU probing are compiled out.
	NoOS bool

	// FastPath reports whether WithFastPath can take effect at all.
	FastPath bool
}

// Capabilities returns the capability report. It never changes during the
// life of the process.
func Capabilities() Capability {
	level := cpufeat.Detect()
	return Capability{
		SIMD:       level.String(),
		FloatLanes: level.Lanes(),
		ZeroCopy:   zeroCopy,
		SoftMath:   fmath.SoftMath,
		NoOS:       noOS,
		FastPath:   fastPathEnabled(),
	}
}

// fastPathEnabled reports whether the build and the environment allow the
// fast path.
func fastPathEnabled() bool {
	return zeroCopy && !config.noFastPath
}

func (c Capability) log(l *slog.Logger) {
	l.LogAttrs(context.Background(), slog.LevelDebug, "alphablend: capabilities",
		slog.String("simd", c.SIMD),
		slog.Int("float_lanes", c.FloatLanes),
		slog.Bool("zero_copy", c.ZeroCopy),
		slog.Bool("soft_math", c.SoftMath),
		slog.Bool("no_os", c.NoOS),
		slog.Bool("fast_path", c.FastPath),
		slog.Int("default_workers", config.workers),
	)
}
