package groebner

import (
	"context"
	"fmt"
	"io"
	"log"
)

// Backend selects the Buchberger driver implementation.
type Backend int

const (
	// Sequential runs the single-threaded driver.
	Sequential Backend = iota
	// Parallel runs the worker-pool driver.
	Parallel
)

// Option configures a Basis/Transformation call via functional
// arguments.
type Option func(*Options)

// Options holds every parameter the engine recognises.
type Options struct {
	MaxDegree          *int
	WithTransformation bool
	Backend            Backend
	Threads            int
	ProgressFunc       func(loops, basisSize, queueSize int)
	Ctx                context.Context
	Logger             *log.Logger

	err error
}

// DefaultOptions returns sequential, untransformed, unbounded, silent
// defaults.
func DefaultOptions() Options {
	return Options{
		Backend: Sequential,
		Threads: 1,
		Ctx:     context.Background(),
		Logger:  log.New(io.Discard, "", 0),
	}
}

// WithMaxDegree caps the lcm-degree of pairs the engine will consider;
// a negative d makes Basis/Transformation fail with ErrOptionViolation.
func WithMaxDegree(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDegree cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDegree = &d
	}
}

// WithTransformation requests the sparse transformation matrix mapping
// basis elements back to the original generators.
func WithTransformation(enabled bool) Option {
	return func(o *Options) { o.WithTransformation = enabled }
}

// WithBackend selects Sequential or Parallel.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithThreads sets the worker count for the Parallel backend; it
// panics on a non-positive count, since that is a programmer error,
// not a runtime condition, and panics are confined to option
// constructors.
func WithThreads(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("groebner: WithThreads requires n > 0, got %d", n))
	}
	return func(o *Options) { o.Threads = n }
}

// WithProgress registers a callback invoked roughly every 1,000 loop
// iterations with the current loop count, basis size, and queue size.
func WithProgress(fn func(loops, basisSize, queueSize int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.ProgressFunc = fn
			o.Logger = log.New(log.Writer(), "groebner: ", log.LstdFlags)
		}
	}
}

// WithContext sets the context used for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
