// Package parallel splits an index range across goroutines.
//
// Work is divided into contiguous chunks, one goroutine per chunk, bounded by
// a worker limit. Nothing persists between calls: each For call spawns and
// joins its own goroutines, so callers never manage a pool lifecycle.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Range is a half-open index interval [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Options controls how For splits work.
type Options struct {
	// Workers is the maximum number of concurrent goroutines.
	// Zero or negative means GOMAXPROCS.
	Workers int

	// MinChunk is the smallest chunk worth handing to a goroutine.
	MinChunk int

	// Align rounds every chunk boundary except the last up to a multiple of
	// Align, so fixed-width batches never straddle two chunks.
	Align int
}

// Split divides [0, n) into at most workers contiguous chunks honoring
// MinChunk and Align. Chunks are returned in index order and cover the range
// exactly once.
func Split(n int, opts Options) []Range {
	if n <= 0 {
		return nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	minChunk := max(opts.MinChunk, 1)
	align := max(opts.Align, 1)

	size := (n + workers - 1) / workers
	size = max(size, minChunk)
	if rem := size % align; rem != 0 {
		size += align - rem
	}

	ranges := make([]Range, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		ranges = append(ranges, Range{Lo: lo, Hi: min(lo+size, n)})
	}
	return ranges
}

// For calls fn once per chunk of [0, n) and waits for all calls to return.
//
// When the range fits in a single chunk fn runs on the calling goroutine.
// fn must only touch state owned by its own chunk.
func For(n int, opts Options, fn func(lo, hi int)) {
	ranges := Split(n, opts)
	switch len(ranges) {
	case 0:
		return
	case 1:
		fn(ranges[0].Lo, ranges[0].Hi)
		return
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range ranges {
		g.Go(func() error {
			fn(r.Lo, r.Hi)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}
