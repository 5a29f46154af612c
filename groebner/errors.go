// errors.go — sentinel errors for the groebner package.
//
// Error policy (matching builder/errors.go):
// - Only sentinel variables are exposed; callers use errors.Is(err, ErrX).
// - Sentinels are never wrapped with formatted strings at definition site;
// call sites attach context with fmt.Errorf("%w: ...").
// - Basis/Transformation never panic on caller-supplied bases; panics are
// confined to With... option constructors given programmer-error values
// (e.g. WithThreads(0)).
//
// Priority when more than one validation fails: ErrIncompatibleRings (arity
// disagreement between generators) is checked before ErrEmptyInput (every
// generator zero while a transformation is requested), which is checked
// before ErrCancelled (context cancellation observed mid-loop).
package groebner

import "errors"

var (
	// ErrEmptyInput is returned when a transformation is requested and
	// every supplied generator is zero, or the input slice itself is
	// empty. Without a transformation, such input yields an empty basis
	// and a nil error.
	ErrEmptyInput = errors.New("groebner: empty input")

	// ErrIncompatibleRings is returned when the supplied generators do not
	// share a common poly.RingDescriptor arity.
	ErrIncompatibleRings = errors.New("groebner: incompatible ring descriptors")

	// ErrCancelled is returned when the engine's context is cancelled
	// before the pair queue drains.
	ErrCancelled = errors.New("groebner: cancelled")

	// ErrOptionViolation is returned by option resolution for a value an
	// Option setter could not validate at call time.
	ErrOptionViolation = errors.New("groebner: invalid option value")
)
