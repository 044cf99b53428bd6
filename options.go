package alphablend

// BufferOption configures a BlendBuffer or BlendBufferInto call.
//
// Options change how the work is scheduled, never the result.
//
// Example:
//
//	// Zero-copy batches split across 4 goroutines
//	out, err := alphablend.BlendBuffer(src, dst, alphablend.SourceOver,
//	    alphablend.WithFastPath(), alphablend.WithWorkers(4))
type BufferOption func(*bufferOptions)

// bufferOptions holds the per-call configuration.
type bufferOptions struct {
	fastPath bool
	workers  int
	minChunk int
}

// defaultMinChunk keeps goroutine overhead below the cost of the work.
const defaultMinChunk = 4096

// defaultBufferOptions returns the options used when none are given.
func defaultBufferOptions() bufferOptions {
	return bufferOptions{
		workers:  config.workers,
		minChunk: defaultMinChunk,
	}
}

func newBufferOptions(opts []BufferOption) bufferOptions {
	o := defaultBufferOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFastPath opts into the zero-copy batch path.
//
// It takes effect only for channel types implementing PlainLayout, and is
// ignored when the build tag alphablend_nounsafe is set or the environment
// variable ALPHABLEND_NO_FASTPATH is true. Results are identical either way.
func WithFastPath() BufferOption {
	return func(o *bufferOptions) {
		o.fastPath = true
	}
}

// WithWorkers splits the buffer across up to n goroutines.
// Zero means GOMAXPROCS and 1 means serial. Negative values are ignored.
func WithWorkers(n int) BufferOption {
	return func(o *bufferOptions) {
		if n >= 0 {
			o.workers = n
		}
	}
}

// WithMinChunk sets the smallest number of colors handed to one goroutine.
// Values below 1 are ignored.
func WithMinChunk(n int) BufferOption {
	return func(o *bufferOptions) {
		if n >= 1 {
			o.minChunk = n
		}
	}
}
