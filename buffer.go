package alphablend

import (
	"context"
	"log/slog"

	"github.com/gogpu/alphablend/internal/parallel"
	"github.com/gogpu/alphablend/internal/wide"
)

// chunkAlign keeps goroutine boundaries on whole fast-path batches.
const chunkAlign = wide.BatchU8Pixels

// BlendBuffer blends src over dst element by element and returns a new
// slice: result[i] = Blend(src[i], dst[i], mode).
//
// src and dst must have the same length; otherwise a *LengthMismatchError is
// returned and nothing is allocated. Neither input is modified.
func BlendBuffer[C Channel[C]](src, dst []Color[C], mode Mode, opts ...BufferOption) ([]Color[C], error) {
	if len(src) != len(dst) {
		return nil, &LengthMismatchError{Source: len(src), Destination: len(dst), Output: len(src)}
	}
	out := make([]Color[C], len(src))
	blendRange(out, src, dst, mode, newBufferOptions(opts))
	return out, nil
}

// BlendBufferInto is BlendBuffer writing into out.
//
// out may be dst (in-place compositing) or src, but must not partially
// overlap either. All three lengths must match; otherwise a
// *LengthMismatchError is returned and out is left untouched.
func BlendBufferInto[C Channel[C]](out, src, dst []Color[C], mode Mode, opts ...BufferOption) error {
	if len(src) != len(dst) || len(out) != len(src) {
		return &LengthMismatchError{Source: len(src), Destination: len(dst), Output: len(out)}
	}
	blendRange(out, src, dst, mode, newBufferOptions(opts))
	return nil
}

// blendRange blends equal-length slices, splitting them per o.
func blendRange[C Channel[C]](out, src, dst []Color[C], mode Mode, o bufferOptions) {
	lane := LaneNone
	if o.fastPath && fastPathEnabled() {
		lane = laneOf[C]()
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.LogAttrs(context.Background(), slog.LevelDebug, "alphablend: blend buffer",
			slog.Int("len", len(src)),
			slog.String("mode", mode.String()),
			slog.String("lane", lane.String()),
			slog.Int("workers", o.workers),
		)
	}

	parallel.For(len(src), parallel.Options{
		Workers:  o.workers,
		MinChunk: o.minChunk,
		Align:    chunkAlign,
	}, func(lo, hi int) {
		if lane != LaneNone && blendPlain(out[lo:hi], src[lo:hi], dst[lo:hi], mode, lane) {
			return
		}
		for i := lo; i < hi; i++ {
			out[i] = Blend(src[i], dst[i], mode)
		}
	})
}
